package selection

import (
	"strings"

	"github.com/FocuswithJustin/VerseCards/core/verse"
)

// Summary groups consecutive references that share a book and chapter into
// passages, keeping the order of first appearance. References from the same
// chapter separated by another chapter form separate passages.
func Summary(refs []verse.Ref) []verse.Passage {
	var out []verse.Passage
	for _, ref := range refs {
		if n := len(out); n > 0 && out[n-1].Book == ref.Book() && out[n-1].Chapter == ref.Chapter() {
			out[n-1].Verses = insertSorted(out[n-1].Verses, ref.Verse())
			continue
		}
		out = append(out, verse.Passage{Book: ref.Book(), Chapter: ref.Chapter(), Verses: []int{ref.Verse()}})
	}
	return out
}

// Describe renders a summary as "John 3:16-18; Psalms 23:1".
func Describe(refs []verse.Ref) string {
	passages := Summary(refs)
	parts := make([]string, len(passages))
	for i, p := range passages {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

func insertSorted(nums []int, n int) []int {
	i := len(nums)
	for i > 0 && nums[i-1] > n {
		i--
	}
	if i > 0 && nums[i-1] == n {
		return nums
	}
	nums = append(nums, 0)
	copy(nums[i+1:], nums[i:])
	nums[i] = n
	return nums
}
