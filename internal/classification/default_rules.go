package classification

import "github.com/geektoshi/nebula-harvest/internal/model"

// DefaultSpecs returns the built-in rule table in evaluation order.
// The fallback category is listed with no rules and a zero floor.
func DefaultSpecs() []model.CategorySpec {
	return []model.CategorySpec{
		{
			Name: model.CategoryBooks,
			Rules: []model.Rule{
				model.NameRule("calibre", 7.0),
				model.NameRule("foliate", 6.0),
				model.DescRule("ebook", 4.5),
				model.DescRule("epub", 4.0),
				model.DescRule("reader", 3.5),
				model.DependsRule("calibre", 5.0),
				model.PathRule("books", 3.0),
				model.PathRule("ebook", 3.0),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryBrowsers,
			Rules: []model.Rule{
				model.NameRule("browser", 4.0),
				model.DescRule("web browser", 5.5),
				model.DescRule("browser", 4.5),
				model.NameRule("firefox", 7.0),
				model.NameRule("chrom", 6.5),
				model.NameRule("webkit", 4.5),
				model.NameRule("palemoon", 6.0),
				model.NameRule("vivaldi", 6.0),
				model.NameRule("falkon", 6.0),
				model.DependsRule("webkit", 3.5),
				model.DependsRule("firefox", 3.5),
				model.PathRule("browser", 3.0),
			},
			Floor: 5.0,
		},
		{
			Name: model.CategoryChat,
			Rules: []model.Rule{
				model.NameRule("chat", 5.5),
				model.DescRule("chat", 4.5),
				model.DescRule("messag", 4.0),
				model.NameRule("matrix", 5.0),
				model.NameRule("element", 5.5),
				model.NameRule("discord", 6.0),
				model.NameRule("slack", 5.0),
				model.NameRule("telegram", 6.0),
				model.NameRule("signal", 6.0),
				model.NameRule("tox", 4.5),
				model.NameRule("irc", 4.5),
				model.DependsRule("libpurple", 4.0),
				model.DependsRule("weechat", 4.0),
				model.PathRule("chat", 3.5),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryDevelopment,
			Rules: []model.Rule{
				model.DescRule("compiler", 4.5),
				model.DescRule("development", 4.0),
				model.DescRule("debugger", 4.0),
				model.DescRule("programming", 4.0),
				model.DescRule("sdk", 4.0),
				model.DescRule("toolchain", 4.0),
				model.NameRule("gcc", 5.5),
				model.NameRule("clang", 5.5),
				model.NameRule("gdb", 5.0),
				model.NameRule("lldb", 5.0),
				model.NameRule("rust", 4.5),
				model.NameRule("cargo", 4.5),
				model.NameRule("cmake", 4.5),
				model.NameRule("make", 4.0),
				model.NameRule("meson", 4.5),
				model.NameRule("ninja", 4.5),
				model.DependsRule("gtk-doc", 3.5),
				model.DependsRule("cmake", 3.5),
				model.PathRule("/lang", 3.5),
				model.PathRule("/devel", 3.5),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryEducation,
			Rules: []model.Rule{
				model.DescRule("education", 5.0),
				model.DescRule("learn", 4.0),
				model.DescRule("math", 4.5),
				model.DescRule("science", 4.0),
				model.DescRule("chemistry", 4.5),
				model.DescRule("astronomy", 4.5),
				model.DescRule("geography", 4.5),
				model.NameRule("khan", 5.0),
				model.NameRule("anki", 6.0),
				model.NameRule("stellarium", 6.0),
				model.DependsRule("khan", 5.0),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryEmail,
			Rules: []model.Rule{
				model.NameRule("mail", 5.0),
				model.NameRule("email", 5.5),
				model.DescRule("email", 5.5),
				model.DescRule("mail", 5.0),
				model.NameRule("imap", 4.5),
				model.NameRule("smtp", 4.5),
				model.NameRule("thunderbird", 6.5),
				model.NameRule("geary", 6.5),
				model.NameRule("mutt", 5.0),
				model.DependsRule("notmuch", 4.5),
				model.DependsRule("dovecot", 4.0),
				model.PathRule("mail", 3.5),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryFinance,
			Rules: []model.Rule{
				model.DescRule("finance", 6.0),
				model.DescRule("bank", 5.0),
				model.DescRule("budget", 5.0),
				model.DescRule("account", 4.5),
				model.NameRule("ledger", 5.0),
				model.NameRule("gnucash", 6.5),
				model.NameRule("kresus", 6.0),
				model.NameRule("money", 4.5),
				model.DependsRule("finance", 4.0),
				model.PathRule("finance", 4.0),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryGaming,
			Rules: []model.Rule{
				model.DescRule("game", 5.0),
				model.DescRule("gaming", 5.5),
				model.NameRule("game", 5.0),
				model.NameRule("doom", 4.5),
				model.NameRule("quake", 4.5),
				model.NameRule("steam", 6.5),
				model.NameRule("lutris", 6.5),
				model.NameRule("minetest", 6.0),
				model.NameRule("supertux", 6.0),
				model.DependsRule("sdl", 4.0),
				model.DependsRule("openal", 3.5),
				model.DependsRule("vulkan", 3.5),
				model.PathRule("games", 4.5),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryGraphics,
			Rules: []model.Rule{
				model.DescRule("graphics", 5.5),
				model.DescRule("drawing", 5.0),
				model.DescRule("3d", 4.5),
				model.DescRule("render", 4.5),
				model.DescRule("cad", 4.5),
				model.NameRule("inkscape", 6.5),
				model.NameRule("blender", 6.5),
				model.NameRule("krita", 6.5),
				model.NameRule("gimp", 6.5),
				model.DependsRule("opengl", 4.0),
				model.PathRule("graphics", 4.0),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryKernels,
			Rules: []model.Rule{
				model.NameRule("linux", 7.0),
				model.NameRule("kernel", 7.0),
				model.NameRule("rt", 4.5),
				model.DescRule("kernel", 6.0),
				model.PathRule("kernel", 5.5),
				model.PathRule("linux", 5.5),
			},
			Floor: 5.5,
		},
		{
			Name: model.CategoryMusic,
			Rules: []model.Rule{
				model.DescRule("music", 5.5),
				model.DescRule("audio", 4.5),
				model.NameRule("music", 5.0),
				model.NameRule("player", 4.5),
				model.NameRule("mix", 4.5),
				model.NameRule("daw", 5.0),
				model.NameRule("spotify", 6.5),
				model.NameRule("clementine", 6.0),
				model.NameRule("rhythmbox", 6.0),
				model.DependsRule("alsa", 3.5),
				model.DependsRule("pulseaudio", 3.5),
				model.PathRule("audio", 4.0),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryNews,
			Rules: []model.Rule{
				model.DescRule("news", 6.0),
				model.DescRule("rss", 5.5),
				model.NameRule("rss", 5.5),
				model.NameRule("news", 6.0),
				model.NameRule("feed", 4.5),
				model.DependsRule("rss", 4.0),
				model.PathRule("news", 4.0),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryOffice,
			Rules: []model.Rule{
				model.DescRule("office", 5.5),
				model.DescRule("spreadsheet", 5.5),
				model.DescRule("word", 5.0),
				model.DescRule("presentation", 5.0),
				model.NameRule("libreoffice", 7.0),
				model.NameRule("onlyoffice", 6.5),
				model.NameRule("calligra", 6.0),
				model.NameRule("abiword", 6.0),
				model.NameRule("gnumeric", 6.0),
				model.DependsRule("libreoffice", 5.0),
			},
			Floor: 4.5,
		},
		{
			Name:  model.CategoryOther,
			Floor: 0,
		},
		{
			Name: model.CategoryPhotos,
			Rules: []model.Rule{
				model.DescRule("photo", 6.0),
				model.DescRule("photograph", 5.5),
				model.NameRule("photo", 6.0),
				model.NameRule("darktable", 6.5),
				model.NameRule("rawtherapee", 6.5),
				model.NameRule("shotwell", 6.0),
				model.DescRule("camera", 5.0),
				model.PathRule("photo", 4.0),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategoryProductivity,
			Rules: []model.Rule{
				model.DescRule("productivity", 5.5),
				model.DescRule("task", 5.0),
				model.DescRule("todo", 5.0),
				model.DescRule("note", 4.5),
				model.DescRule("calendar", 4.5),
				model.NameRule("planner", 5.0),
				model.NameRule("organizer", 5.0),
				model.NameRule("journal", 4.5),
				model.DependsRule("todo", 4.0),
				model.PathRule("productivity", 4.0),
			},
			Floor: 4.5,
		},
		{
			Name: model.CategorySystem,
			Rules: []model.Rule{
				model.DescRule("system", 4.0),
				model.DescRule("daemon", 4.0),
				model.DescRule("service", 4.0),
				model.DescRule("filesystem", 4.0),
				model.DescRule("kernel", 4.0),
				model.NameRule("systemd", 5.0),
				model.NameRule("elogind", 5.0),
				model.NameRule("udev", 5.0),
				model.NameRule("grub", 5.0),
				model.DependsRule("systemd", 4.0),
				model.DependsRule("elogind", 4.0),
				model.DependsRule("udev", 4.0),
				model.PathRule("system", 4.0),
			},
			Floor: 3.5,
		},
		{
			Name: model.CategoryTools,
			Rules: []model.Rule{
				model.DescRule("utility", 4.5),
				model.DescRule("tool", 4.0),
				model.DescRule("command-line", 4.0),
				model.DescRule("cli", 4.0),
				model.NameRule("util", 4.0),
				model.NameRule("tool", 4.0),
				model.PathRule("/utils", 3.5),
				model.PathRule("/tools", 3.5),
			},
			Floor: 3.5,
		},
		{
			Name: model.CategoryVideo,
			Rules: []model.Rule{
				model.DescRule("video", 6.0),
				model.DescRule("media", 4.5),
				model.NameRule("mpv", 6.5),
				model.NameRule("vlc", 6.5),
				model.NameRule("ffmpeg", 6.0),
				model.NameRule("plex", 6.0),
				model.DescRule("stream", 5.0),
				model.DependsRule("ffmpeg", 5.0),
				model.DependsRule("gstreamer", 4.5),
				model.PathRule("video", 4.0),
			},
			Floor: 4.5,
		},
	}
}
