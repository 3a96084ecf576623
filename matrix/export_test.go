// SPDX-License-Identifier: MIT

package matrix

// Test bridge: white-box hooks visible to matrix_test only.

// LiveBorrows reports how many mutable handles of m's storage are live
// (the owner itself excluded).
func LiveBorrows[T any](m *Mat[T]) int {
	t := m.st.table
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.live) - 1
}

// SetTotalMemory replaces the physical-memory query and returns a restore func.
func SetTotalMemory(f func() uint64) (restore func()) {
	old := totalMemory
	totalMemory = f

	return func() { totalMemory = old }
}
