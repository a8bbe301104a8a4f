package presenter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DanielPopoola/request-flows/internal/domain"
)

// JSONDump renders any payload as two-space indented JSON.
func JSONDump[T any](payload T) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error rendering payload: %w", err)
	}
	return string(data), nil
}

// CoffeeCards renders the list view: a heading, then title and description
// of every entry.
func CoffeeCards(coffees []domain.Coffee) (string, error) {
	var b strings.Builder
	b.WriteString("Coffee List\n")
	for _, c := range coffees {
		b.WriteString("\n")
		b.WriteString(c.Title)
		b.WriteString("\n")
		b.WriteString(c.Description)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// SubmissionConfirmation renders the message shown after a successful submit.
func SubmissionConfirmation(created domain.CreatedResource) (string, error) {
	return fmt.Sprintf("Success! Your data was submitted with ID: %d", created.ID), nil
}

// TextRenderer prints intents for a terminal.
type TextRenderer struct {
	LoadingText string
	ErrorPrefix string
}

var (
	ListText   = TextRenderer{LoadingText: "Loading...", ErrorPrefix: "Error: "}
	SubmitText = TextRenderer{LoadingText: "Submitting...", ErrorPrefix: ""}
)

func (r TextRenderer) Render(intent Intent) string {
	switch i := intent.(type) {
	case ShowNothing:
		return ""
	case ShowLoadingIndicator:
		return r.LoadingText
	case ShowError:
		return r.ErrorPrefix + i.Message
	case ShowContent:
		return i.Body
	default:
		return ""
	}
}
