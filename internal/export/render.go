package export

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Renderer pipes DOT text into a Graphviz-compatible binary.
type Renderer struct {
	Binary string // defaults to "dot"
	Format string // image format passed as -T<format>, defaults to "png"
}

// Render writes the image for dot to out, e.g. `dot -Tpng -o out`.
func (r Renderer) Render(ctx context.Context, dot []byte, out string) error {
	bin := r.Binary
	if bin == "" {
		bin = "dot"
	}
	format := r.Format
	if format == "" {
		format = "png"
	}

	cmd := exec.CommandContext(ctx, bin, "-T"+format, "-o", out)
	cmd.Stdin = bytes.NewReader(dot)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", bin, err, msg)
		}
		return fmt.Errorf("%s failed: %w", bin, err)
	}
	return nil
}
