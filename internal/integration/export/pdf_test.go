package export

import (
	"bytes"
	"os"
	"testing"

	"github.com/expense-report/backend/internal/domain/entity"
)

// findTestFont looks for a usable TTF in common system locations so the
// renderer can run without a project-local font fixture.
func findTestFont(t *testing.T) string {
	t.Helper()

	candidates := []string{
		os.Getenv("PDF_FONT_PATH"),
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skip("no TTF font available for PDF rendering")
	return ""
}

func TestDocumentRenderer_Render(t *testing.T) {
	renderer := NewDocumentRenderer(findTestFont(t))

	for _, dimension := range []entity.ReportDimension{
		entity.DimensionCollaborator,
		entity.DimensionCard,
		entity.DimensionProject,
		entity.DimensionCompany,
	} {
		t.Run(string(dimension), func(t *testing.T) {
			content, err := renderer.Render(sampleReport(dimension))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.HasPrefix(content, []byte("%PDF")) {
				t.Error("expected output to start with the PDF magic header")
			}
		})
	}
}

func TestDocumentRenderer_EmptyReport(t *testing.T) {
	renderer := NewDocumentRenderer(findTestFont(t))

	content, err := renderer.Render(entity.BuildReport(entity.DimensionCard, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content) == 0 {
		t.Error("expected a document even with no records")
	}
}

func TestDocumentRenderer_MissingFont(t *testing.T) {
	renderer := NewDocumentRenderer("/nonexistent/font.ttf")

	if _, err := renderer.Render(sampleReport(entity.DimensionCollaborator)); err == nil {
		t.Fatal("expected an error when the font file is missing")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"curto", 10, "curto"},
		{"exatamente", 10, "exatamente"},
		{"uma descrição comprida demais", 13, "uma descrição"},
		{"ação", 3, "açã"},
	}

	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d): expected %q, got %q", tt.in, tt.n, tt.want, got)
		}
	}
}

func TestRowValues_TruncationPerVariant(t *testing.T) {
	e := &entity.Expense{
		Description:      "uma descrição extremamente comprida que passa de trinta runas",
		CollaboratorName: "Nome Muito Comprido Do Colaborador",
		Note:             "observação igualmente comprida demais",
	}

	t.Run("collaborator variant keeps full values", func(t *testing.T) {
		values := rowValues(entity.DimensionCollaborator, e)
		if values[1] != e.Description {
			t.Errorf("expected untruncated description, got %q", values[1])
		}
		if values[3] != e.Note {
			t.Errorf("expected untruncated note, got %q", values[3])
		}
	})

	t.Run("dimension variant truncates", func(t *testing.T) {
		values := rowValues(entity.DimensionCard, e)
		if got := len([]rune(values[1])); got != maxDescriptionRunes {
			t.Errorf("expected description cut to %d runes, got %d", maxDescriptionRunes, got)
		}
		if got := len([]rune(values[3])); got != maxCollaboratorRunes {
			t.Errorf("expected collaborator cut to %d runes, got %d", maxCollaboratorRunes, got)
		}
		if got := len([]rune(values[4])); got != maxNoteRunes {
			t.Errorf("expected note cut to %d runes, got %d", maxNoteRunes, got)
		}
	})
}
