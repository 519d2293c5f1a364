package app

// Kind classification values.
const (
	KindPerson   = "person"
	KindClothing = "clothing"
	KindOther    = "other"
)

// Person characteristic values.
const (
	CharacteristicFeminine  = "feminine"
	CharacteristicMasculine = "masculine"
)

// Clothing slot values, from the single-letter codes in the object files.
const (
	ClothingShoe     = "shoe"
	ClothingTunic    = "tunic"
	ClothingHat      = "hat"
	ClothingBottom   = "bottom"
	ClothingBackpack = "backpack"
)

// Object is one parsed THOL object definition file. Field order matters:
// the JSON output keeps id, name and sprites in this stable order.
type Object struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	Kind           Kind     `json:"kind"`
	NumSprites     uint64   `json:"numSprites"`
	Sprites        []Sprite `json:"sprites"`
	HeadIndex      []int64  `json:"headIndex"`
	BodyIndex      []int64  `json:"bodyIndex"`
	BackFootIndex  []int64  `json:"backFootIndex"`
	FrontFootIndex []int64  `json:"frontFootIndex"`
}

// Kind classifies an object as a playable person, a wearable clothing
// piece or anything else. Characteristic is only set for persons,
// Clothing and ClothingOffset only for clothing.
type Kind struct {
	Type           string    `json:"type"`
	Characteristic string    `json:"characteristic,omitempty"`
	Clothing       string    `json:"clothing,omitempty"`
	ClothingOffset *Position `json:"clothingOffset,omitempty"`
}

// Sprite is one sprite reference inside an object, in file order.
// InvisCont is absent in older object files, hence the pointer.
type Sprite struct {
	ID           uint64   `json:"id"`
	Pos          Position `json:"pos"`
	Rot          float64  `json:"rot"`
	HFlip        float64  `json:"hFlip"`
	Color        ColorRGB `json:"color"`
	AgeRange     AgeRange `json:"ageRange"`
	Parent       int64    `json:"parent"`
	InvisHolding float64  `json:"invisHolding"`
	InvisWorn    float64  `json:"invisWorn"`
	BehindSlots  float64  `json:"behindSlots"`
	InvisCont    *float64 `json:"invisCont,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ColorRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type AgeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SpriteIDs returns the object's sprite identifiers in first-appearance
// order, duplicates included.
func (o Object) SpriteIDs() []uint64 {
	ids := make([]uint64, 0, len(o.Sprites))
	for _, s := range o.Sprites {
		ids = append(ids, s.ID)
	}
	return ids
}

func newKind(person bool, male bool, clothingCode string, offset Position) Kind {
	if person {
		characteristic := CharacteristicFeminine
		if male {
			characteristic = CharacteristicMasculine
		}
		return Kind{Type: KindPerson, Characteristic: characteristic}
	}

	if clothingCode != "" && clothingCode != "n" {
		clothing := ClothingTunic
		switch clothingCode {
		case "s":
			clothing = ClothingShoe
		case "t":
			clothing = ClothingTunic
		case "h":
			clothing = ClothingHat
		case "b":
			clothing = ClothingBottom
		case "p":
			clothing = ClothingBackpack
		}
		off := offset
		return Kind{Type: KindClothing, Clothing: clothing, ClothingOffset: &off}
	}

	return Kind{Type: KindOther}
}
