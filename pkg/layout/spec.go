package layout

import (
	"fmt"

	"github.com/matzehuels/termgrid/pkg/element"
	"github.com/matzehuels/termgrid/pkg/errors"
)

// =============================================================================
// Policy
// =============================================================================

// Policy decides how one dimension of a request is sized: literally
// (Fixed) or by negotiation (Auto). The zero value is Auto.
type Policy struct {
	fixed bool
	n     int
}

// Auto returns a policy solved by negotiation.
func Auto() Policy { return Policy{} }

// Fixed returns a policy with a literal size.
func Fixed(n int) Policy { return Policy{fixed: true, n: n} }

// IsAuto reports whether the dimension is negotiated.
func (p Policy) IsAuto() bool { return !p.fixed }

// Value returns the literal size of a Fixed policy and false for Auto.
func (p Policy) Value() (int, bool) { return p.n, p.fixed }

// Resolve returns the literal size, or auto for an Auto policy.
func (p Policy) Resolve(auto int) int {
	if p.fixed {
		return p.n
	}
	return auto
}

// String returns "auto" or the fixed size.
func (p Policy) String() string {
	if p.fixed {
		return fmt.Sprintf("%d", p.n)
	}
	return "auto"
}

// =============================================================================
// Request
// =============================================================================

// Request is one cell of a layout.
type Request struct {
	Factory element.Factory
	Width   Policy
	Height  Policy

	// Title is shown on its own line by most element kinds. It adds one line
	// of height overhead to its row but never biases overhead probes.
	Title string
}

// RequestOption configures a Request built with Panel.
type RequestOption func(*Request)

// WithWidth sets the width policy.
func WithWidth(p Policy) RequestOption {
	return func(r *Request) { r.Width = p }
}

// WithHeight sets the height policy.
func WithHeight(p Policy) RequestOption {
	return func(r *Request) { r.Height = p }
}

// WithTitle overrides the title taken from the factory's decorations.
func WithTitle(title string) RequestOption {
	return func(r *Request) { r.Title = title }
}

// Panel builds an Auto-sized request for f. The title defaults to the
// factory's title decoration.
func Panel(f element.Factory, opts ...RequestOption) Request {
	r := Request{Factory: f}
	if f != nil {
		r.Title = f.Decorations().Title()
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Kind returns the factory's element kind.
func (r Request) Kind() element.Kind {
	return r.Factory.Kind()
}

// Decorations returns the factory's decorations with the request title
// applied, i.e. the decorations the instantiated element will carry.
func (r Request) Decorations() element.Decorations {
	dec := r.Factory.Decorations()
	if r.Title == "" {
		return dec.Without(element.KeyTitle)
	}
	return dec.With(element.KeyTitle, r.Title)
}

// instantiate creates the element at the given size.
func (r Request) instantiate(width, height int) (element.Element, error) {
	return r.Factory.Instantiate(width, height, r.Title, r.Decorations())
}

// =============================================================================
// Spec
// =============================================================================

// Row is one horizontal group of requests: the unit of width negotiation and
// cache invalidation.
type Row []Request

// hasTitle reports whether any request in the row carries a title.
func (r Row) hasTitle() bool {
	for _, req := range r {
		if req.Title != "" {
			return true
		}
	}
	return false
}

// autoWidthCount returns the number of Auto-width requests.
func (r Row) autoWidthCount() int {
	k := 0
	for _, req := range r {
		if req.Width.IsAuto() {
			k++
		}
	}
	return k
}

// Spec is an ordered grid of rows. A single-row spec is a horizontal layout.
type Spec struct {
	Rows []Row
}

// NewSpec builds a Spec from rows.
func NewSpec(rows ...Row) Spec {
	return Spec{Rows: rows}
}

// Validate checks the spec for configuration errors: empty rows, missing
// factories and non-positive fixed sizes.
func (s Spec) Validate() error {
	for i, row := range s.Rows {
		if len(row) == 0 {
			return errors.New(errors.ErrCodeInvalidLayout, "row %d is empty", i)
		}
		for j, req := range row {
			if req.Factory == nil {
				return errors.New(errors.ErrCodeInvalidElement, "row %d element %d has no factory", i, j)
			}
			if n, ok := req.Width.Value(); ok {
				if err := errors.ValidateFixed("width", n); err != nil {
					return fmt.Errorf("row %d element %d: %w", i, j, err)
				}
			}
			if n, ok := req.Height.Value(); ok {
				if err := errors.ValidateFixed("height", n); err != nil {
					return fmt.Errorf("row %d element %d: %w", i, j, err)
				}
			}
		}
	}
	return nil
}

// Size is terminal geometry in character cells.
type Size struct {
	Cols int
	Rows int
}

// String formats the size as COLSxROWS.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}
