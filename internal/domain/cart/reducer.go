// internal/domain/cart/reducer.go
package cart

// The reducer owns the cart collection semantics: merge by identity key,
// quantity update, removal, and derived totals. Every operation is pure --
// it returns a fresh slice and leaves its input untouched, which is what
// lets checkout snapshot a cart without defensive copying anywhere else.

// Add merges line into lines. When a line with the same identity key
// already exists only its quantity grows; price and name stay as they were
// when the line was first added, so a re-fetched catalog price can never
// silently change an already-carted variation. Otherwise the line is
// appended, preserving insertion order.
func Add(lines []Line, line Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)

	for i := range out {
		if out[i].SameLine(line.ProductID, line.Variation) {
			out[i].Quantity += line.Quantity
			return out
		}
	}

	return append(out, line)
}

// SetQuantity updates the quantity of the line matching the identity key.
// A quantity of zero or less removes the line. No-op when nothing matches.
func SetQuantity(lines []Line, productID, variation string, quantity int) []Line {
	if quantity <= 0 {
		return Remove(lines, productID, variation)
	}

	out := make([]Line, len(lines))
	copy(out, lines)

	for i := range out {
		if out[i].SameLine(productID, variation) {
			out[i].Quantity = quantity
			break
		}
	}

	return out
}

// Remove drops the line matching the identity key. No-op when absent.
func Remove(lines []Line, productID, variation string) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.SameLine(productID, variation) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Sum recomputes the derived totals from the lines
func Sum(lines []Line) Totals {
	var totals Totals
	for _, l := range lines {
		totals.ItemCount += l.Quantity
		totals.TotalPrice += l.Subtotal()
	}
	return totals
}
