package component

// Div is a generic container.
type Div struct {
	*Base
}

// NewDiv creates a Div holding children.
func NewDiv(children ...Component) *Div {
	d := &Div{Base: NewBase("div")}
	// A fresh element cannot be part of a cycle; only nil children fail.
	_ = d.Add(children...)
	return d
}

// Add appends children to the container.
func (d *Div) Add(children ...Component) error {
	return add(d, children)
}

// Remove removes children from the container.
func (d *Div) Remove(children ...Component) {
	remove(d, children)
}

// Input is a single-line text field.
type Input struct {
	*Base
}

// NewInput creates an empty input.
func NewInput() *Input {
	return &Input{Base: NewBase("input")}
}

// SetValue sets the field's value.
func (i *Input) SetValue(value string) {
	i.Element().SetAttribute("value", value)
}

// Value returns the field's value.
func (i *Input) Value() string {
	v, _ := i.Element().Attribute("value")
	return v
}

// SetPlaceholder sets the text shown while the field is empty.
func (i *Input) SetPlaceholder(text string) {
	i.Element().SetAttribute("placeholder", text)
}

// Placeholder returns the placeholder text.
func (i *Input) Placeholder() string {
	v, _ := i.Element().Attribute("placeholder")
	return v
}

// Label displays text.
type Label struct {
	*Base
}

// NewLabel creates a label with text.
func NewLabel(text string) *Label {
	l := &Label{Base: NewBase("label")}
	l.SetText(text)
	return l
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	l.Element().SetText(text)
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.Element().Text()
}

// Clickable is a component that fires click events.
type Clickable interface {
	Component
	AddClickListener(fn func(*ClickEvent)) (Registration, error)
}

// Button is a clickable component with a caption.
type Button struct {
	*Base
}

// NewButton creates a button with a caption.
func NewButton(caption string) *Button {
	b := &Button{Base: NewBase("button")}
	b.Element().SetText(caption)
	return b
}

// Caption returns the button's caption.
func (b *Button) Caption() string {
	return b.Element().Text()
}

// AddClickListener registers fn for client and server-fired clicks.
func (b *Button) AddClickListener(fn func(*ClickEvent)) (Registration, error) {
	return AddListener(b, Click, fn, nil)
}

// Click fires a server-side click on the button.
func (b *Button) Click() {
	Fire(b, Click, NewClickEvent(b))
}
