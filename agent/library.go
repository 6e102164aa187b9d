package agent

import (
	"context"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"google.golang.org/genai"
)

// Library answers the function calls of a model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Tool is a report of one month that a model can ask for by name.
type Tool struct {
	Name        string
	Description string
	// Render produces the markdown answer from the view of the month.
	Render func(budget.View) string
}

// Toolbox is the set of tools of an expert, reading views through a Viewer.
type Toolbox struct {
	Viewer Viewer
	Tools  []Tool
}

var monthParameter = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"month": {
			Type:        genai.TypeString,
			Description: "The month to report, as YYYY-MM. The current month is the default.",
		},
	},
}

// Declarations lists the function declarations of the tools.
func (b Toolbox) Declarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(b.Tools))
	for _, t := range b.Tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  monthParameter,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report.",
			},
		})
	}
	return decls
}

// Library dispatches function calls to the tools by name.
//
// Failures are reported to the model in an "error" entry of the response,
// never returned.
func (b Toolbox) Library() Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}
		output, err := b.call(ctx, call)
		if err != nil {
			resp.Response = map[string]any{"error": err.Error()}
		} else {
			resp.Response = map[string]any{"output": output}
		}
		return resp
	}
}

func (b Toolbox) call(ctx context.Context, call *genai.FunctionCall) (string, error) {
	for _, t := range b.Tools {
		if t.Name != call.Name {
			continue
		}
		month, err := parseMonth(call.Args)
		if err != nil {
			return "", err
		}
		view, err := b.Viewer.View(ctx, month)
		if err != nil {
			return "", err
		}
		return t.Render(view), nil
	}
	return "", fmt.Errorf("unknown function %s", call.Name)
}

func parseMonth(args map[string]any) (date.Month, error) {
	imonth, ok := args["month"]
	if !ok {
		return date.ThisMonth(), nil
	}
	smonth, ok := imonth.(string)
	if !ok {
		return date.ThisMonth(), fmt.Errorf("argument 'month' is not a string as expected but %T", imonth)
	}
	if smonth == "" {
		return date.ThisMonth(), nil
	}
	month, err := date.ParseMonth(smonth)
	if err != nil {
		return date.ThisMonth(), fmt.Errorf("argument 'month' must be a month formatted as YYYY-MM, got %q", smonth)
	}
	return month, nil
}
