// SPDX-License-Identifier: EPL-2.0

package signal

// Render pulls n frames from root: one Get then one Advance per frame.
func Render(n int, root Signal) []Frame {
	out := make([]Frame, n)
	RenderInto(out, root)
	return out
}

// RenderInto fills dst from root, reusing the caller's slice.
func RenderInto(dst []Frame, root Signal) {
	for i := range dst {
		dst[i] = root.Get()
		root.Advance()
	}
}
