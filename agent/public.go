package agent

import (
	"context"
	"fmt"

	"github.com/etnz/kennel"
	"github.com/etnz/kennel/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user runs a small dog kennel with a business partner. He is here to ask about
			his inventory, his sales history and how the money is split between the partners.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper returns the expert that reads the kennel ledger from the
// given storage.
func NewBookkeeper(storage kennel.Storage) *Expert {
	lib := []Function{
		summaryTool(storage),
		historyTool(storage),
		availableTool(storage),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of the kennel's ledger:
		the dogs in stock, the sales history and the partner balances.
		Ask him for any figure about the business.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of a small dog kennel run by two partners.
				Use the available tools to read the ledger:
				  - the per-breed summary and partner balances
				  - the sales history
				  - the dogs currently available

				Money routing rule: a cash sale credits the selling partner, a card sale
				credits the other partner. The tools report amounts already routed.

				You are part of a team of experts; pardon their approximative language
				and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// renderTool wraps a renderer over a freshly loaded ledger into a Func with
// no parameters.
func renderTool(storage kennel.Storage, name, description string, render func(*kennel.Ledger) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report read from the ledger.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := storage.Load()
			if err != nil {
				return &genai.FunctionResponse{
					ID:       id,
					Name:     name,
					Response: map[string]any{"error": fmt.Sprintf("could not load ledger: %v", err)},
				}
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     name,
				Response: map[string]any{"output": render(ledger)},
			}
		},
	}
}

func summaryTool(storage kennel.Storage) *Func {
	return renderTool(storage, "Summary",
		`Summary reports the whole business: for each breed, the dogs in stock and
		the dogs sold, followed by the partner balances.`,
		renderer.Summary)
}

func availableTool(storage kennel.Storage) *Func {
	return renderTool(storage, "Available",
		`Available reports the dogs currently in stock, counted by breed and gender.`,
		renderer.Available)
}

func historyTool(storage kennel.Storage) *Func {
	return renderTool(storage, "History",
		`History reports every recorded sale, most recent first: date, breed, gender,
		seller, price, payment method and which partner received the money.`,
		func(l *kennel.Ledger) string {
			var sales []kennel.Sale
			for _, s := range l.Sales() {
				sales = append(sales, s)
			}
			return renderer.History(sales, l.Currency())
		})
}
