//go:build !unix

package arena

func mapAnon(int) ([]byte, error) {
	return nil, ErrMmapUnsupported
}

func unmap([]byte) error {
	return ErrMmapUnsupported
}
