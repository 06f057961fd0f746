//go:build !darwin

package clipboard

func setClipboardContent(_ string) error {
	return ErrUnsupported
}
