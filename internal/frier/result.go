package frier

// resultBuffer - Fixed capacity buffer holding the latest response line
type resultBuffer struct {
	data []byte
}

// newResultBuffer - Returns a result buffer of the given capacity holding initial
func newResultBuffer(capacity int, initial string) *resultBuffer {
	r := &resultBuffer{data: make([]byte, 0, capacity)}
	r.set(initial)
	return r
}

// set - Overwrites the entire content, anything beyond capacity is cut off
func (R *resultBuffer) set(line string) {
	if len(line) > cap(R.data) {
		line = line[:cap(R.data)]
	}
	R.data = append(R.data[:0], line...)
}

// readAt - Returns a copy of at most size bytes starting at offset, empty at or beyond end of content
func (R *resultBuffer) readAt(size int, offset int64) []byte {
	if offset < 0 || offset >= int64(len(R.data)) || size <= 0 {
		return []byte{}
	}

	end := offset + int64(size)
	if end > int64(len(R.data)) {
		end = int64(len(R.data))
	}

	out := make([]byte, end-offset)
	copy(out, R.data[offset:end])

	return out
}

func (R *resultBuffer) len() int {
	return len(R.data)
}

func (R *resultBuffer) String() string {
	return string(R.data)
}
