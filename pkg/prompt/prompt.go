// Package prompt collects final variable values from the user before
// generation. Every public variable in the resolved context is confirmed
// interactively: strings prompt with the current value as default, lists
// become a selection where the first entry is the default, booleans become a
// yes/no question. Nested mappings and underscore-prefixed keys pass through
// untouched.
package prompt

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-scaffold/pkg/render"
	"github.com/goliatone/go-scaffold/pkg/vars"
)

// Fill walks ctx in key order and returns a new context with user-supplied
// values. Defaults shown to the user are first rendered through engine
// against the values collected so far, so a default like
// "{{project_name}}-docs" tracks earlier answers.
func Fill(ctx *vars.Context, engine render.Engine, driver Driver) (*vars.Context, error) {
	out := vars.New()
	if ctx == nil {
		return out, nil
	}

	for _, pair := range ctx.Pairs() {
		if strings.HasPrefix(pair.Key, "_") {
			out.Set(pair.Key, pair.Value)
			continue
		}

		switch value := pair.Value.(type) {
		case string:
			def, err := renderDefault(value, out, engine)
			if err != nil {
				return nil, err
			}
			answer, err := driver.Input(pair.Key, def)
			if err != nil {
				return nil, fmt.Errorf("prompt: variable %s: %w", pair.Key, err)
			}
			out.Set(pair.Key, answer)
		case bool:
			answer, err := driver.Confirm(pair.Key, value)
			if err != nil {
				return nil, fmt.Errorf("prompt: variable %s: %w", pair.Key, err)
			}
			out.Set(pair.Key, answer)
		case []any:
			options := make([]string, 0, len(value))
			for _, item := range value {
				options = append(options, fmt.Sprintf("%v", item))
			}
			if len(options) == 0 {
				out.Set(pair.Key, pair.Value)
				continue
			}
			answer, err := driver.Select(pair.Key, options)
			if err != nil {
				return nil, fmt.Errorf("prompt: variable %s: %w", pair.Key, err)
			}
			out.Set(pair.Key, answer)
		default:
			// Numbers and nested mappings are carried through as authored.
			out.Set(pair.Key, pair.Value)
		}
	}
	return out, nil
}

func renderDefault(def string, collected *vars.Context, engine render.Engine) (string, error) {
	if engine == nil || !render.IsTemplated(def) {
		return def, nil
	}
	rendered, err := engine.RenderString(def, collected.Map())
	if err != nil {
		return "", err
	}
	return rendered, nil
}
