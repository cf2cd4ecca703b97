package catalog

import "github.com/geektoshi/nebula-harvest/internal/model"

// SpotlightSection is a curated shelf of well-known packages. Every package on
// a shelf is overridden to the shelf's category in the seed override table.
type SpotlightSection struct {
	Title    string
	Category model.Category
	Packages []string
}

var spotlight = []SpotlightSection{
	{Title: "Browsers", Category: model.CategoryBrowsers, Packages: []string{"firefox", "chromium", "ungoogled-chromium", "falkon", "surf"}},
	{Title: "Chat", Category: model.CategoryChat, Packages: []string{"element-desktop", "signal-desktop", "fractal", "weechat", "discord"}},
	{Title: "Games", Category: model.CategoryGaming, Packages: []string{"steam", "lutris", "minetest", "supertuxkart", "0ad"}},
	{Title: "Email", Category: model.CategoryEmail, Packages: []string{"thunderbird", "geary", "claws-mail", "mutt", "kmail"}},
	{Title: "Productivity", Category: model.CategoryProductivity, Packages: []string{"libreoffice", "onlyoffice-desktopeditors", "gnumeric", "abiword", "zim"}},
	{Title: "Utilities", Category: model.CategoryTools, Packages: []string{"htop", "ripgrep", "tmux", "neovim", "git"}},
	{Title: "Graphics", Category: model.CategoryGraphics, Packages: []string{"gimp", "inkscape", "krita", "blender", "darktable"}},
	{Title: "Music", Category: model.CategoryMusic, Packages: []string{"audacity", "ardour", "lmms", "hydrogen", "mpd"}},
	{Title: "Video", Category: model.CategoryVideo, Packages: []string{"vlc", "mpv", "kdenlive", "obs-studio", "handbrake"}},
}

// Spotlight returns the curated sections in display order. The result is a
// copy and may be modified by the caller.
func Spotlight() []SpotlightSection {
	out := make([]SpotlightSection, len(spotlight))
	for i, s := range spotlight {
		s.Packages = append([]string(nil), s.Packages...)
		out[i] = s
	}
	return out
}

// Icon returns the icon of the section's category.
func (s SpotlightSection) Icon() ResourceID {
	return IconForCategory(string(s.Category))
}
