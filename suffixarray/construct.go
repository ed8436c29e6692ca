package suffixarray

// buildArray computes the suffix array of text by prefix doubling.
//
// Algorithm outline (Manber–Myers with counting-sort rounds):
//  1. Counting-sort all positions by their single byte; assign each
//     position an equivalence-class rank.
//  2. For k = 1, 2, 4, ...: every suffix is represented by the rank
//     pair (rank[i], rank[i+k]), with an absent second half ranking
//     below every present one (a proper prefix sorts first). Sort by
//     second key (derived from the previous order, no comparison
//     needed), then stably counting-sort by first key, then reassign
//     ranks for prefixes of length 2k.
//  3. Stop once every class is a singleton or 2k covers the text.
//
// Complexity: O(n log n) time, O(n) extra memory. No byte value is
// special; comparisons never terminate at a zero.
func buildArray(text []byte) []int32 {
	n := len(text)
	sa := make([]int32, n)
	if n == 0 {
		return sa
	}

	rank := make([]int32, n)   // current equivalence class per position
	newRank := make([]int32, n)
	order2 := make([]int32, n) // positions ordered by second key
	width := n
	if width < 256 {
		width = 256
	}
	cnt := make([]int32, width) // shared bucket counters

	// Round 0: counting sort on single bytes.
	for _, c := range text {
		cnt[c]++
	}
	var sum int32
	for i := 0; i < 256; i++ {
		cnt[i], sum = sum, sum+cnt[i]
	}
	for i := 0; i < n; i++ {
		c := text[i]
		sa[cnt[c]] = int32(i)
		cnt[c]++
	}
	rank[sa[0]] = 0
	classes := int32(1)
	for i := 1; i < n; i++ {
		if text[sa[i]] != text[sa[i-1]] {
			classes++
		}
		rank[sa[i]] = classes - 1
	}

	for k := 1; k < n && int(classes) < n; k <<= 1 {
		// Second-key order: suffixes whose second half is empty come
		// first (shorter sorts before any extension), then positions
		// s-k in the order the previous round sorted s.
		p := 0
		for i := n - k; i < n; i++ {
			order2[p] = int32(i)
			p++
		}
		for _, s := range sa {
			if s >= int32(k) {
				order2[p] = s - int32(k)
				p++
			}
		}

		// Stable counting sort by first key.
		for i := int32(0); i < classes; i++ {
			cnt[i] = 0
		}
		for i := 0; i < n; i++ {
			cnt[rank[i]]++
		}
		sum = 0
		for i := int32(0); i < classes; i++ {
			cnt[i], sum = sum, sum+cnt[i]
		}
		for _, s := range order2 {
			sa[cnt[rank[s]]] = s
			cnt[rank[s]]++
		}

		// Reassign classes for prefixes of length 2k.
		newRank[sa[0]] = 0
		classes = 1
		for i := 1; i < n; i++ {
			if !samePair(rank, sa[i], sa[i-1], k, n) {
				classes++
			}
			newRank[sa[i]] = classes - 1
		}
		copy(rank, newRank)
	}

	return sa
}

// samePair reports whether suffixes a and b share the same rank pair
// for prefix length 2k. A missing second half only matches another
// missing one.
func samePair(rank []int32, a, b int32, k, n int) bool {
	if rank[a] != rank[b] {
		return false
	}
	ak, bk := int(a)+k, int(b)+k
	if ak < n && bk < n {
		return rank[ak] == rank[bk]
	}

	return ak >= n && bk >= n
}
