package output

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
)

// tagline describes what flowcore actually does; it appears under the
// ASCII wordmark and in the compact, non-TTY banner.
const tagline = "constant-propagation lattice + control-flow graphs"

// BannerOptions controls which parts of the startup banner render.
type BannerOptions struct {
	ShowBanner  bool // render the "flowcore" ASCII wordmark
	ShowVersion bool
	ShowLicense bool
}

// DefaultBannerOptions is the banner shown on an interactive TTY.
func DefaultBannerOptions() BannerOptions {
	return BannerOptions{ShowBanner: true, ShowVersion: true, ShowLicense: true}
}

// PrintBanner writes the startup banner to w. Without ShowBanner it prints
// GetCompactBanner's single line in place of the ASCII wordmark.
func PrintBanner(w io.Writer, version string, opts BannerOptions) {
	if w == nil {
		return
	}

	if !opts.ShowBanner {
		if opts.ShowVersion {
			fmt.Fprintln(w, GetCompactBanner(version))
		}
		if opts.ShowLicense {
			fmt.Fprintln(w, "Apache-2.0 License")
		}
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, GetASCIILogo())
	fmt.Fprintln(w, tagline)
	if opts.ShowVersion {
		fmt.Fprintf(w, "flowcore v%s\n", version)
	}
	if opts.ShowLicense {
		fmt.Fprintln(w, "Apache-2.0 License")
	}
	fmt.Fprintln(w)
}

// GetASCIILogo renders the "flowcore" wordmark.
func GetASCIILogo() string {
	return figure.NewFigure("flowcore", "standard", true).String()
}

// GetCompactBanner is the one-line banner PrintBanner uses when ShowBanner
// is off: no ASCII art, just the name, version, and tagline.
func GetCompactBanner(version string) string {
	return fmt.Sprintf("flowcore v%s — %s", version, tagline)
}

// ShouldShowBanner reports whether the full ASCII banner should render:
// never with --no-banner set, otherwise only when attached to a TTY.
func ShouldShowBanner(isTTY, noBannerFlag bool) bool {
	if noBannerFlag {
		return false
	}
	return isTTY
}
