package uniquelines

import "crypto/md5"

// Uniq returns a channel that filters duplicate strings from the input.
// Each string is reduced to its digest and checked against the set of
// digests already forwarded, so the input does not need to be sorted.
// The first occurrence of each string passes through in input order and
// every later occurrence is dropped.
//
// The returned channel is closed when the input channel is closed.
// This function spawns a goroutine that terminates when the input
// channel is closed.
func Uniq(in <-chan string) <-chan string {
	out := make(chan string)
	go func() {
		seen := make(map[[md5.Size]byte]struct{})
		for s := range in {
			sum := md5.Sum([]byte(s))
			if _, ok := seen[sum]; ok {
				continue
			}
			seen[sum] = struct{}{}
			out <- s
		}
		close(out)
	}()
	return out
}
