package models

import "encoding/json"

// Style is the flat record of visual properties applied to a slide.
// Every field carries a concrete default; a Style is never partially set.
// Optionality exists only at the scope level (global, template, override).
type Style struct {
	FontFamily      string `json:"font_family"`
	FontSizeTitle   int    `json:"font_size_title"`
	FontSizeBody    int    `json:"font_size_body"`
	FontColor       string `json:"font_color"`
	BackgroundColor string `json:"background_color"`
	TextAlignment   string `json:"text_alignment"`
	Padding         int    `json:"padding"`

	// Typography extensions
	UseBold   bool     `json:"use_bold"`
	UseItalic bool     `json:"use_italic"`
	WrapWidth *float64 `json:"wrap_width,omitempty"`

	// Text effects
	Shadow  *TextShadow  `json:"shadow,omitempty"`
	Outline *TextOutline `json:"outline,omitempty"`
	Box     *TextBox     `json:"box,omitempty"`

	// Position overrides (0-1 normalized coordinates)
	TitlePosition *TextPosition `json:"title_position,omitempty"`
	BodyPosition  *TextPosition `json:"body_position,omitempty"`
}

// TextShadow is a drop shadow behind title/body text.
type TextShadow struct {
	Enabled bool    `json:"enabled"`
	Color   string  `json:"color"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Blur    float64 `json:"blur"`
}

// TextOutline is an outline stroke around text glyphs.
type TextOutline struct {
	Enabled bool    `json:"enabled"`
	Color   string  `json:"color"`
	Width   float64 `json:"width"`
}

// TextBox is a background box drawn behind text.
type TextBox struct {
	Enabled bool    `json:"enabled"`
	Color   string  `json:"color"`
	Margin  float64 `json:"margin"`
}

// TextPosition places a text element on the slide.
// AlignX is LEFT, CENTER or RIGHT; AlignY is TOP, CENTER or BOTTOM.
type TextPosition struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	AlignX string  `json:"align_x"`
	AlignY string  `json:"align_y"`
}

// DefaultStyle returns a Style with every field at its default value.
func DefaultStyle() Style {
	return Style{
		FontFamily:      "Bfont",
		FontSizeTitle:   72,
		FontSizeBody:    36,
		FontColor:       "#FFFFFF",
		BackgroundColor: "#1A1A2E",
		TextAlignment:   "center",
		Padding:         40,
	}
}

// DefaultTextShadow returns a disabled shadow with default geometry.
func DefaultTextShadow() TextShadow {
	return TextShadow{Color: "#000000", OffsetX: 2.0, OffsetY: -2.0}
}

// DefaultTextOutline returns a disabled outline with default width.
func DefaultTextOutline() TextOutline {
	return TextOutline{Color: "#000000", Width: 1.0}
}

// DefaultTextBox returns a disabled text box with default margin.
func DefaultTextBox() TextBox {
	return TextBox{Color: "#00000080", Margin: 10.0}
}

// DefaultTextPosition returns a centered position.
func DefaultTextPosition() TextPosition {
	return TextPosition{X: 0.5, Y: 0.5, AlignX: "CENTER", AlignY: "CENTER"}
}

// UnmarshalJSON decodes a Style on top of its defaults so that documents
// written before a field existed still deserialize with that field at its
// default value rather than at the Go zero value.
func (s *Style) UnmarshalJSON(data []byte) error {
	type plain Style
	tmp := plain(DefaultStyle())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*s = Style(tmp)
	return nil
}

func (t *TextShadow) UnmarshalJSON(data []byte) error {
	type plain TextShadow
	tmp := plain(DefaultTextShadow())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = TextShadow(tmp)
	return nil
}

func (t *TextOutline) UnmarshalJSON(data []byte) error {
	type plain TextOutline
	tmp := plain(DefaultTextOutline())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = TextOutline(tmp)
	return nil
}

func (t *TextBox) UnmarshalJSON(data []byte) error {
	type plain TextBox
	tmp := plain(DefaultTextBox())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = TextBox(tmp)
	return nil
}

func (t *TextPosition) UnmarshalJSON(data []byte) error {
	type plain TextPosition
	tmp := plain(DefaultTextPosition())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = TextPosition(tmp)
	return nil
}

// Clone returns a deep copy of the style, including optional sub-records.
func (s Style) Clone() Style {
	out := s
	if s.WrapWidth != nil {
		w := *s.WrapWidth
		out.WrapWidth = &w
	}
	if s.Shadow != nil {
		sh := *s.Shadow
		out.Shadow = &sh
	}
	if s.Outline != nil {
		ol := *s.Outline
		out.Outline = &ol
	}
	if s.Box != nil {
		b := *s.Box
		out.Box = &b
	}
	if s.TitlePosition != nil {
		p := *s.TitlePosition
		out.TitlePosition = &p
	}
	if s.BodyPosition != nil {
		p := *s.BodyPosition
		out.BodyPosition = &p
	}
	return out
}
