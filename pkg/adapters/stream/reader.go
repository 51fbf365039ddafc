package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// Reader decodes a batch of cases from whitespace separated integers:
//
//	T
//	M            (case 1: M-1 internal nodes, terminal is node M)
//	l_1 r_1      (1-based edge targets of node 1)
//	...
//	l_{M-1} r_{M-1}
//	M            (case 2)
//	...
type Reader struct {
	sc     *bufio.Scanner
	token  int
	caseNo int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// Case returns the number of the last case read by Next.
func (r *Reader) Case() int {
	return r.caseNo
}

// ReadCount reads the number of cases that follow.
func (r *Reader) ReadCount() (int, error) {
	n, err := r.nextInt()
	if err != nil {
		return 0, r.fail(err)
	}
	if n < 0 {
		return 0, r.fail(fmt.Errorf("%w: negative case count %d", domain.ErrMalformedInput, n))
	}
	return n, nil
}

// Next reads one case and returns its graph with 0-based edges.
// It returns io.EOF only when the stream ends cleanly before a case starts.
func (r *Reader) Next() (*domain.Graph, error) {
	m, err := r.nextInt()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	r.caseNo++
	if err != nil {
		return nil, r.fail(err)
	}
	if m < 1 {
		return nil, r.fail(fmt.Errorf("%w: node count %d, want at least 1", domain.ErrMalformedInput, m))
	}
	if m-1 > domain.MaxNodes {
		return nil, r.fail(fmt.Errorf("%w: %d nodes (limit %d)", domain.ErrTooManyNodes, m-1, domain.MaxNodes))
	}

	left := make([]int, m-1)
	right := make([]int, m-1)
	for i := 0; i < m-1; i++ {
		if left[i], err = r.nextEdge(); err != nil {
			return nil, r.fail(err)
		}
		if right[i], err = r.nextEdge(); err != nil {
			return nil, r.fail(err)
		}
	}

	g, err := domain.NewGraph(left, right)
	if err != nil {
		return nil, r.fail(err)
	}
	return g, nil
}

func (r *Reader) nextEdge() (int, error) {
	v, err := r.nextInt()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: %w", domain.ErrMalformedInput, io.ErrUnexpectedEOF)
		}
		return 0, err
	}
	return v - 1, nil
}

func (r *Reader) nextInt() (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		return 0, io.EOF
	}
	r.token++
	v, err := strconv.Atoi(r.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", domain.ErrMalformedInput, r.sc.Text())
	}
	return v, nil
}

func (r *Reader) fail(err error) error {
	if errors.Is(err, io.EOF) && !errors.Is(err, domain.ErrMalformedInput) {
		err = fmt.Errorf("%w: %w", domain.ErrMalformedInput, io.ErrUnexpectedEOF)
	}
	return &domain.InputError{Case: r.caseNo, Token: r.token, Cause: err}
}
