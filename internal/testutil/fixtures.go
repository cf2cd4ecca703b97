package testutil

// Fixture templates shared across package tests.
var (
	FirefoxESR = Template{
		PkgName:     "firefox-esr",
		ShortDesc:   "A web browser",
		Homepage:    "https://www.mozilla.org/firefox/enterprise/",
		Maintainer:  "Void Packagers <packagers@example.org>",
		MakeDepends: []string{"gtk+3-devel", "nss-devel>=3.90", "$(vopt_if wayland wayland-devel)"},
	}

	Unknown = Template{
		PkgName: "zzz-unknown",
		Depends: []string{"glibc"},
	}

	Gimp = Template{
		PkgName:     "gimp",
		ShortDesc:   "GNU image manipulation program",
		Homepage:    "https://www.gimp.org",
		MakeDepends: []string{"gtk+3-devel", "libmypaint-devel"},
	}

	Weechat = Template{
		PkgName:   "weechat",
		ShortDesc: "Fast, light and extensible IRC chat client",
		Homepage:  "https://weechat.org",
	}

	Mpv = Template{
		PkgName:     "mpv",
		ShortDesc:   "Video player based on MPlayer/mplayer2",
		MakeDepends: []string{"ffmpeg6-devel", "libass-devel"},
	}
)

// StandardPackages is a small tree exercising several categories.
func StandardPackages() []Template {
	return []Template{FirefoxESR, Unknown, Gimp, Weechat, Mpv}
}
