package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/scoopfind/pkg/manifest"
	"github.com/matzehuels/scoopfind/pkg/search"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - bucket names
	colorYellow = lipgloss.Color("220") // Amber - hints
	colorWhite  = lipgloss.Color("255") // Bright white - app names
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// styles are bound to one output's renderer, so color is only emitted
// when that output supports it.
type styles struct {
	bucket  lipgloss.Style
	app     lipgloss.Style
	version lipgloss.Style
	bin     lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		bucket:  r.NewStyle().Bold(true).Foreground(colorCyan),
		app:     r.NewStyle().Foreground(colorWhite),
		version: r.NewStyle().Foreground(colorDim),
		bin:     r.NewStyle().Foreground(colorCyan),
		hint:    r.NewStyle().Foreground(colorYellow),
	}
}

const (
	indent      = "    "
	noMatches   = "No matches found."
	remoteTitle = "Results from other known buckets..."
	remoteHint  = "(add them using 'scoop bucket add <name>')"
)

// =============================================================================
// Presenter
// =============================================================================

// presenter prints search reports.
type presenter struct {
	w     io.Writer
	style styles
}

func newPresenter(w io.Writer) *presenter {
	return &presenter{w: w, style: newStyles(lipgloss.NewRenderer(w))}
}

// text prints r in the human-readable layout: one block per bucket,
// each followed by a blank line.
func (p *presenter) text(r *search.Report) error {
	var b strings.Builder
	switch {
	case len(r.Local) > 0:
		for _, res := range r.Local {
			fmt.Fprintf(&b, "%s\n", p.style.bucket.Render(fmt.Sprintf("'%s' bucket:", res.Bucket)))
			for _, m := range res.Matches {
				b.WriteString(indent + p.match(m) + "\n")
			}
			b.WriteString("\n")
		}
	case len(r.Remote) > 0:
		b.WriteString(remoteTitle + "\n")
		b.WriteString(p.style.hint.Render(remoteHint) + "\n\n")
		for _, res := range r.Remote {
			header := fmt.Sprintf("'%s' bucket (install using 'scoop install %s/<app>'):", res.Bucket, res.Bucket)
			b.WriteString(p.style.bucket.Render(header) + "\n")
			for _, app := range res.Apps {
				b.WriteString(indent + p.style.app.Render(app) + "\n")
			}
			b.WriteString("\n")
		}
	default:
		b.WriteString(noMatches + "\n")
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// match formats "name (version)" plus the executable that matched, if any.
func (p *presenter) match(m manifest.Match) string {
	line := p.style.app.Render(m.Name) + " " + p.style.version.Render("("+m.Version+")")
	if m.Bin != "" {
		line += " --> includes " + p.style.bin.Render("'"+m.Bin+"'")
	}
	return line
}

// jsonReport is the --json document. Empty phases encode as [].
type jsonReport struct {
	Query       string                `json:"query"`
	Local       []search.BucketResult `json:"local"`
	Remote      []search.RemoteResult `json:"remote"`
	RateLimited bool                  `json:"rate_limited"`
}

func (p *presenter) json(r *search.Report) error {
	doc := jsonReport{
		Query:       r.Query,
		Local:       r.Local,
		Remote:      r.Remote,
		RateLimited: r.RateLimited,
	}
	if doc.Local == nil {
		doc.Local = []search.BucketResult{}
	}
	if doc.Remote == nil {
		doc.Remote = []search.RemoteResult{}
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
