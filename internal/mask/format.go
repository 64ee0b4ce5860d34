package mask

// Format inserts the template literals around raw according to the
// configured direction and appends the right affix. pos is a caret offset
// into raw; the returned offset points at the same character in the result.
func (e *Engine) Format(raw string, pos int) (string, int) {
	if e.cfg.Direction == RightToLeft {
		return e.FormatRightToLeft(raw, pos)
	}
	return e.FormatLeftToRight(raw, pos)
}

// FormatLeftToRight fills slots from the start of the template. Literal run i
// is written before raw character i, so a trailing run only shows once input
// reaches past it. Input beyond the template length is cut from the end.
func (e *Engine) FormatLeftToRight(raw string, pos int) (string, int) {
	if e.tmpl.IsEmpty() {
		return raw, pos
	}

	runs := e.tmpl.literalRuns
	out := make([]rune, 0, e.tmpl.Len()+1)
	start := pos
	i := 0
	for _, r := range raw {
		if i < len(runs) {
			out = append(out, runs[i]...)
			if start > i {
				pos += len(runs[i])
			}
		}
		out = append(out, r)
		i++
	}

	if limit := e.tmpl.Len(); len(out) > limit {
		out = out[:limit]
	}
	pos = clamp(pos, 0, len(out))
	return string(out) + e.cfg.RightAffix, pos
}

// FormatRightToLeft fills slots from the end of the template, so the last
// raw character always lands in the last slot. The run leading the first
// slot appears only once every slot is filled. Overflow is cut from the
// front and the caret moves left by the amount removed.
func (e *Engine) FormatRightToLeft(raw string, pos int) (string, int) {
	if e.tmpl.IsEmpty() {
		return raw, pos
	}

	runes := []rune(raw)
	count := len(runes)
	slots := e.tmpl.Slots()
	runs := e.tmpl.literalRuns
	start := pos

	// Built back to front, reversed once at the end.
	reversed := make([]rune, 0, e.tmpl.Len()+1)
	for i := 0; i <= count; i++ {
		if idx := slots - i; idx >= 0 && (i < count || i == slots) {
			run := runs[idx]
			for j := len(run) - 1; j >= 0; j-- {
				reversed = append(reversed, run[j])
			}
			if start > count-i {
				pos += len(run)
			}
		}
		if i < count {
			reversed = append(reversed, runes[count-1-i])
		}
	}

	out := make([]rune, len(reversed))
	for i, r := range reversed {
		out[len(reversed)-1-i] = r
	}

	if limit := e.tmpl.Len(); len(out) > limit {
		trimmed := len(out) - limit
		out = out[trimmed:]
		pos -= trimmed
	}
	pos = clamp(pos, 0, len(out))
	return string(out) + e.cfg.RightAffix, pos
}
