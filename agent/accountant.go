package agent

import (
	"context"
	"errors"

	"github.com/supportbank/supportbank"
	"github.com/supportbank/supportbank/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert that fronts the conversation and
// routes ledger questions to the others.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You front a conversation about a personal ledger of transactions
			between named parties. The user asks who owes what, what an account
			has been spending on, or how a balance came to be.

			You do not know the ledger yourself. The experts reachable through
			your tools do; they keep the context of your previous questions.
			Ask them, then answer the user in plain language. Figures come from
			the experts, never from guesswork. If a question is about anything
			other than the ledger, say so briefly.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAccountant creates the expert holding the bank. Its functions read
// the live ledger, so answers reflect the current session state.
func NewAccountant(bank *supportbank.Bank) *Expert {
	lib := []Function{summaryFunc(bank), statementFunc(bank)}

	return &Expert{
		Name: "Accountant",
		Description: `The accountant has read access to the ledger. Ask for
		the summary of all account balances, or for the full statement of one
		named account.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the accountant of a ledger of transactions between named
			parties. Use your tools to read the ledger before answering:
			the summary for balances across all accounts, the statement for
			the history of one account. Account names are matched ignoring
			case. Negative balances are rendered in parentheses. Report what
			the ledger says; do not invent entries.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// summaryFunc exposes the all-accounts summary to the model.
func summaryFunc(bank *supportbank.Bank) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ledger_summary",
			Description: "Returns every account with its current balance, as a markdown table.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
		},
		Run: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "ledger_summary",
				Response: map[string]any{
					"output": renderer.SummaryMarkdown(bank.Summary()),
				},
			}
		},
	}
}

// statementFunc exposes a single account statement to the model.
func statementFunc(bank *supportbank.Bank) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "account_statement",
			Description: "Returns the balance and dated transaction history of one account, as a markdown table.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {
						Type:        genai.TypeString,
						Description: "The account name, matched ignoring case.",
					},
				},
				Required: []string{"name"},
			},
		},
		Run: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{
				ID:       id,
				Name:     "account_statement",
				Response: map[string]any{},
			}
			name, ok := args["name"].(string)
			if !ok {
				fresp.Response["error"] = "the account name must be a string"
				return fresp
			}
			account, err := bank.Account(name)
			if errors.Is(err, supportbank.ErrAccountNotFound) {
				fresp.Response["error"] = "no account under that name"
				return fresp
			}
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = renderer.StatementMarkdown(account)
			return fresp
		},
	}
}
