package control

// Frame is an open bounded container. Size is the total size of the container
// and Remaining is how many of its bytes are still unread.
type Frame struct {
	Type      Type
	Size      uint64
	Remaining uint64
}

type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	if top.Remaining != 0 {
		return Error.New(
			"data remaining in bounded: size=%d remaining=%d",
			top.Size,
			top.Remaining,
		)
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Check returns an error if size more bytes do not fit in every open
// container.
func (s *Stack) Check(size uint64) (err error) {
	for i, f := range *s {
		if size > f.Remaining {
			return Error.New(
				"exceeded bounded: depth=%d/%d size=%d remaining=%d consuming=%d",
				i,
				len(*s),
				f.Size,
				f.Remaining,
				size,
			)
		}
	}

	return nil
}

// Consume accounts for size bytes read inside every open container.
func (s *Stack) Consume(size uint64) (err error) {
	err = s.Check(size)
	if err != nil {
		return err
	}

	for _, f := range *s {
		f.Remaining -= size
	}

	return nil
}

// Close pops the innermost containers that are exhausted.
func (s *Stack) Close() (err error) {
	for {
		top := s.Top()
		if top == nil || top.Remaining != 0 {
			return nil
		}

		err = s.Pop()
		if err != nil {
			return err
		}
	}
}
