package lottery

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable description of the pool to w.
func (p *Pool[T]) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"LotteryPool version %s\ntotal tickets %d\ncapacity %d\n",
		Version, p.total, p.capacity,
	)
	if err != nil {
		return err
	}

	for i, e := range p.entries {
		_, err = fmt.Fprintf(w, "entry %d, count %d\n", i+1, e.Count)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Pool[T]) String() string {
	var sb strings.Builder
	_ = p.Dump(&sb)
	return sb.String()
}
