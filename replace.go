package canvas

// ReplaceColor returns a copy of the canvas in which every pixel whose Red,
// Green, and Blue exactly equal replacee's has them overwritten with
// replacer's. Alpha is neither compared nor written, so transparency is
// preserved through the replacement.
func (c *Canvas) ReplaceColor(replacee, replacer Color) *Canvas {
	out := c.Clone()
	out.EachPixel(func(x, y, o int) {
		if out.data[o+Red] == replacee[Red] &&
			out.data[o+Green] == replacee[Green] &&
			out.data[o+Blue] == replacee[Blue] {
			out.data[o+Red] = replacer[Red]
			out.data[o+Green] = replacer[Green]
			out.data[o+Blue] = replacer[Blue]
		}
	})
	return out
}

// ReplaceColorTolerance is ReplaceColor with a perceptual match: every pixel
// whose CIE-Lab distance to replacee is at most tolerance is replaced.
// A tolerance of 0 matches exactly like ReplaceColor; values around 0.1
// capture colors that are barely distinguishable to the eye. Alpha is
// neither compared nor written.
func (c *Canvas) ReplaceColorTolerance(replacee, replacer Color, tolerance float64) *Canvas {
	if tolerance <= 0 {
		return c.ReplaceColor(replacee, replacer)
	}
	target := replacee.colorful()
	out := c.Clone()
	out.EachPixel(func(x, y, o int) {
		px := Color(out.data[o+Red : o+Blue+1])
		if px.colorful().DistanceLab(target) <= tolerance {
			out.data[o+Red] = replacer[Red]
			out.data[o+Green] = replacer[Green]
			out.data[o+Blue] = replacer[Blue]
		}
	})
	return out
}
