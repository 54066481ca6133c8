package render

// BlendMode selects the compositing operation used when writing a pixel
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendAdd
	BlendMax
	BlendScreen
)

var blendNames = [...]string{
	BlendReplace: "replace",
	BlendAlpha:   "alpha",
	BlendAdd:     "add",
	BlendMax:     "max",
	BlendScreen:  "screen",
}

func (m BlendMode) String() string {
	if int(m) < len(blendNames) {
		return blendNames[m]
	}
	return "unknown"
}

// ParseBlendMode maps a config name to a mode, "lighter" is accepted as an alias of add
func ParseBlendMode(s string) (BlendMode, bool) {
	if s == "lighter" {
		return BlendAdd, true
	}
	for i, n := range blendNames {
		if n == s {
			return BlendMode(i), true
		}
	}
	return BlendReplace, false
}

// Apply composites src onto dst
func (m BlendMode) Apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendMax:
		return Max(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	default:
		if alpha <= 0 {
			return dst
		}
		return src
	}
}
