package app

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reasons.
const (
	ReasonUnrecognizedFormat = "unrecognized object file format"
	ReasonMissingField       = "missing required field"
	ReasonMalformedNumber    = "malformed number"
)

// ParseError describes why a single object file was rejected. A rejected
// file is skipped as a whole, it never produces a partial Object.
type ParseError struct {
	Reason string
	Field  string
	Line   int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s (field %q)", e.Line, e.Reason, e.Field)
	}
	return fmt.Sprintf("%s (field %q)", e.Reason, e.Field)
}

// assignment is one key=value pair from an object file. A comma either
// separates two assignments on the same line (invisHolding=0,invisWorn=0)
// or continues the previous value list (pos=40.0,-23.0), so values can
// hold more than one element.
type assignment struct {
	key    string
	values []string
	line   int
}

func (a assignment) uintValue() (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(a.values[0]), 10, 64)
	if err != nil {
		return 0, &ParseError{Reason: ReasonMalformedNumber, Field: a.key, Line: a.line}
	}
	return v, nil
}

func (a assignment) intValue() (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(a.values[0]), 10, 64)
	if err != nil {
		return 0, &ParseError{Reason: ReasonMalformedNumber, Field: a.key, Line: a.line}
	}
	return v, nil
}

func (a assignment) floatValue() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(a.values[0]), 64)
	if err != nil {
		return 0, &ParseError{Reason: ReasonMalformedNumber, Field: a.key, Line: a.line}
	}
	return v, nil
}

func (a assignment) floatValues(n int) ([]float64, error) {
	if len(a.values) < n {
		return nil, &ParseError{Reason: ReasonMalformedNumber, Field: a.key, Line: a.line}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(a.values[i]), 64)
		if err != nil {
			return nil, &ParseError{Reason: ReasonMalformedNumber, Field: a.key, Line: a.line}
		}
		out[i] = v
	}
	return out, nil
}

func (a assignment) intValues() ([]int64, error) {
	out := make([]int64, 0, len(a.values))
	for _, raw := range a.values {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, &ParseError{Reason: ReasonMalformedNumber, Field: a.key, Line: a.line}
		}
		out = append(out, v)
	}
	return out, nil
}

func tokenizeAssignments(lines []string, firstLine int) []assignment {
	out := make([]assignment, 0, len(lines)*2)
	for i, line := range lines {
		for _, chunk := range strings.Split(line, ",") {
			chunk = strings.TrimSpace(chunk)
			if chunk == "" {
				continue
			}
			if key, value, ok := strings.Cut(chunk, "="); ok {
				out = append(out, assignment{
					key:    strings.TrimSpace(key),
					values: []string{value},
					line:   firstLine + i,
				})
				continue
			}
			// Continuation of the previous value list.
			if len(out) > 0 {
				out[len(out)-1].values = append(out[len(out)-1].values, chunk)
			}
		}
	}
	return out
}

// fieldCursor walks the flattened assignment sequence. seek skips
// unrecognized keys, which keeps the parser forward-compatible with
// object file fields this tool does not model.
type fieldCursor struct {
	fields []assignment
	pos    int
}

func (c *fieldCursor) next() (assignment, bool) {
	if c.pos >= len(c.fields) {
		return assignment{}, false
	}
	a := c.fields[c.pos]
	c.pos++
	return a, true
}

func (c *fieldCursor) seek(key string) (assignment, error) {
	for {
		a, ok := c.next()
		if !ok {
			return assignment{}, &ParseError{Reason: ReasonMissingField, Field: key}
		}
		if a.key == key {
			return a, nil
		}
	}
}

// ParseObject parses the raw text of one THOL object definition file.
// The first line must be the numeric id, the second line is the display
// name, everything after that is key=value fields. Any failure rejects
// the whole file.
func ParseObject(raw string) (Object, error) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")

	if len(lines) == 0 || !strings.HasPrefix(lines[0], "id=") {
		return Object{}, &ParseError{Reason: ReasonUnrecognizedFormat, Field: "id", Line: 1}
	}
	id, err := strconv.ParseUint(strings.TrimSpace(strings.TrimPrefix(lines[0], "id=")), 10, 64)
	if err != nil {
		return Object{}, &ParseError{Reason: ReasonMalformedNumber, Field: "id", Line: 1}
	}
	if len(lines) < 2 {
		return Object{}, &ParseError{Reason: ReasonMissingField, Field: "name", Line: 2}
	}
	name := lines[1]

	cur := &fieldCursor{fields: tokenizeAssignments(lines[2:], 3)}

	personField, err := cur.seek("person")
	if err != nil {
		return Object{}, err
	}
	person, err := personField.uintValue()
	if err != nil {
		return Object{}, err
	}

	maleField, err := cur.seek("male")
	if err != nil {
		return Object{}, err
	}
	male, err := maleField.uintValue()
	if err != nil {
		return Object{}, err
	}

	clothingField, err := cur.seek("clothing")
	if err != nil {
		return Object{}, err
	}
	clothingCode := strings.TrimSpace(clothingField.values[0])

	offsetField, err := cur.seek("clothingOffset")
	if err != nil {
		return Object{}, err
	}
	offsetXY, err := offsetField.floatValues(2)
	if err != nil {
		return Object{}, err
	}
	clothingOffset := Position{X: offsetXY[0], Y: offsetXY[1]}

	numSpritesField, err := cur.seek("numSprites")
	if err != nil {
		return Object{}, err
	}
	numSprites, err := numSpritesField.uintValue()
	if err != nil {
		return Object{}, err
	}

	sprites, headIndex, err := parseSprites(cur)
	if err != nil {
		return Object{}, err
	}

	bodyField, err := cur.seek("bodyIndex")
	if err != nil {
		return Object{}, err
	}
	bodyIndex, err := bodyField.intValues()
	if err != nil {
		return Object{}, err
	}

	backFootField, err := cur.seek("backFootIndex")
	if err != nil {
		return Object{}, err
	}
	backFootIndex, err := backFootField.intValues()
	if err != nil {
		return Object{}, err
	}

	frontFootField, err := cur.seek("frontFootIndex")
	if err != nil {
		return Object{}, err
	}
	frontFootIndex, err := frontFootField.intValues()
	if err != nil {
		return Object{}, err
	}

	return Object{
		ID:             id,
		Name:           name,
		Kind:           newKind(person > 0, male > 0, clothingCode, clothingOffset),
		NumSprites:     numSprites,
		Sprites:        sprites,
		HeadIndex:      headIndex,
		BodyIndex:      bodyIndex,
		BackFootIndex:  backFootIndex,
		FrontFootIndex: frontFootIndex,
	}, nil
}

// parseSprites consumes spriteID-led blocks until headIndex terminates
// the sprite section. Sprite order is the order of appearance in the
// file, duplicates included.
func parseSprites(cur *fieldCursor) ([]Sprite, []int64, error) {
	sprites := make([]Sprite, 0, 8)
	var current *spriteBuilder

	for {
		a, ok := cur.next()
		if !ok {
			return nil, nil, &ParseError{Reason: ReasonMissingField, Field: "headIndex"}
		}

		switch a.key {
		case "spriteID":
			if current != nil {
				s, err := current.finish()
				if err != nil {
					return nil, nil, err
				}
				sprites = append(sprites, s)
			}
			current = newSpriteBuilder(a.line)
			if err := current.set(a); err != nil {
				return nil, nil, err
			}
		case "headIndex":
			if current != nil {
				s, err := current.finish()
				if err != nil {
					return nil, nil, err
				}
				sprites = append(sprites, s)
			}
			headIndex, err := a.intValues()
			if err != nil {
				return nil, nil, err
			}
			return sprites, headIndex, nil
		default:
			if current == nil {
				continue
			}
			if err := current.set(a); err != nil {
				return nil, nil, err
			}
		}
	}
}

var spriteRequiredFields = []string{
	"spriteID", "pos", "rot", "hFlip", "color",
	"ageRange", "parent", "invisHolding", "invisWorn", "behindSlots",
}

type spriteBuilder struct {
	sprite Sprite
	seen   map[string]bool
	line   int
}

func newSpriteBuilder(line int) *spriteBuilder {
	return &spriteBuilder{seen: make(map[string]bool, len(spriteRequiredFields)+1), line: line}
}

func (b *spriteBuilder) set(a assignment) error {
	switch a.key {
	case "spriteID":
		v, err := a.uintValue()
		if err != nil {
			return err
		}
		b.sprite.ID = v
	case "pos":
		xy, err := a.floatValues(2)
		if err != nil {
			return err
		}
		b.sprite.Pos = Position{X: xy[0], Y: xy[1]}
	case "rot":
		v, err := a.floatValue()
		if err != nil {
			return err
		}
		b.sprite.Rot = v
	case "hFlip":
		v, err := a.floatValue()
		if err != nil {
			return err
		}
		b.sprite.HFlip = v
	case "color":
		rgb, err := a.floatValues(3)
		if err != nil {
			return err
		}
		b.sprite.Color = ColorRGB{R: rgb[0], G: rgb[1], B: rgb[2]}
	case "ageRange":
		mm, err := a.floatValues(2)
		if err != nil {
			return err
		}
		b.sprite.AgeRange = AgeRange{Min: mm[0], Max: mm[1]}
	case "parent":
		v, err := a.intValue()
		if err != nil {
			return err
		}
		b.sprite.Parent = v
	case "invisHolding":
		v, err := a.floatValue()
		if err != nil {
			return err
		}
		b.sprite.InvisHolding = v
	case "invisWorn":
		v, err := a.floatValue()
		if err != nil {
			return err
		}
		b.sprite.InvisWorn = v
	case "behindSlots":
		v, err := a.floatValue()
		if err != nil {
			return err
		}
		b.sprite.BehindSlots = v
	case "invisCont":
		v, err := a.floatValue()
		if err != nil {
			return err
		}
		b.sprite.InvisCont = &v
	default:
		// Unrecognized sprite field, ignored.
		return nil
	}
	b.seen[a.key] = true
	return nil
}

func (b *spriteBuilder) finish() (Sprite, error) {
	for _, field := range spriteRequiredFields {
		if !b.seen[field] {
			return Sprite{}, &ParseError{Reason: ReasonMissingField, Field: field, Line: b.line}
		}
	}
	return b.sprite, nil
}
