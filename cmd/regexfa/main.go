// Command regexfa compiles regular expressions into epsilon-NFAs and DFAs,
// exports them for Graphviz or Mermaid, runs .rfa check suites and serves
// the compiler over HTTP.
package main

func main() {
	Execute()
}
