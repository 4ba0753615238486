package formula

import (
	"fmt"
	"io"
	"strings"

	"github.com/scheerer/hello-formula/internal/logging"
	"github.com/scheerer/hello-formula/internal/resolver"
	"go.uber.org/zap"
)

var logger = logging.New("formula")

const (
	experienced = "I've already created formulas using Ritchie."
	newcomer    = "I'm excited in creating new formulas using Ritchie."
)

type Inputs struct {
	Text     string
	List     string
	Boolean  bool
	Password string
}

// Load resolves every input of c. Missing or malformed values take their defaults.
func Load(r *resolver.Resolver, c Convention) Inputs {
	for _, ref := range c.Refs() {
		res := r.Describe(ref)
		value := res.Value
		if ref.Name == c.Password && !res.Defaulted() {
			value = "****"
		}
		logger.With(
			zap.String("variable", ref.Name),
			zap.Stringer("kind", ref.Kind),
			zap.Stringer("status", res.Status),
			zap.String("value", value)).
			Debug("Resolved input")
	}

	return Inputs{
		Text:     r.Text(c.Text),
		List:     r.List(c.List),
		Boolean:  r.Boolean(c.Boolean),
		Password: r.Text(c.Password),
	}
}

type Formula struct {
	Inputs  Inputs
	Palette Palette
}

func (f Formula) Run(w io.Writer) error {
	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	experience := newcomer
	if f.Inputs.Boolean {
		experience = experienced
	}

	line("Hello World!")
	line(paint(f.Palette.Name, fmt.Sprintf("My name is %s.", f.Inputs.Text)))
	line(paint(f.Palette.Experience, experience))
	line(paint(f.Palette.Automate, fmt.Sprintf("Today, I want to automate %s.", f.Inputs.List)))
	line(paint(f.Palette.Secret, fmt.Sprintf("My secret is %s.", f.Inputs.Password)))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}
