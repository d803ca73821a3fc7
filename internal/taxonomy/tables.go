// Package taxonomy holds the static rule tables the classifier consults:
// shell item names, game and program lexicons, install-path indicators,
// extension maps and well-known sites. Every entry is stored folded (see
// types.Fold) with "/" as the path separator, so lookups compare directly
// against normalized names and paths.
package taxonomy

import "github.com/mesh-intelligence/desksort/pkg/types"

// SystemNames are shell namespace items matched against the exact folded
// display name.
var SystemNames = set(
	"recycle bin", "корзина",
	"this pc", "computer", "my computer", "этот компьютер", "мой компьютер",
	"network", "сеть",
	"control panel", "панель управления",
)

// GameLaunchSchemes are URI prefixes that launch a game directly.
var GameLaunchSchemes = []string{
	"steam://rungameid/",
	"steam://run/",
	"epicgames://",
	"com.epicgames.launcher://apps/",
	"uplay://launch/",
	"goggalaxy://opengamedetails/",
}

// GameKeywords are well-known game titles matched as substrings of a name.
var GameKeywords = []string{
	"minecraft", "fortnite", "valorant", "league of legends", "dota 2",
	"counter-strike", "csgo", "cs:go", "cyberpunk 2077", "the witcher", "ведьмак",
	"grand theft auto", "gta v", "stray", "elden ring", "baldurs gate", "baldur's gate",
	"starcraft", "diablo", "overwatch", "world of warcraft",
	"call of duty", "battlefield", "apex legends", "genshin impact",
	"terraria", "stardew valley", "doom", "fallout", "skyrim",
	"civilization", "sims", "fifa", "nba 2k",
}

// GamePathIndicators are directory fragments that mark a game install.
var GamePathIndicators = []string{
	"steamapps/common/",
	"epic games/",
	"gog games/",
	"gog galaxy/games/",
	"origin games/",
	"ea games/",
	"ubisoft game launcher/games/",
	"riot games/",
	"blizzard/",
	"my games/",
	"/games/",
	"/игры/",
}

// GenericGameWords hint at a game when no counter-keyword is present.
var GenericGameWords = []string{"game", "play", "игра", "игры"}

// GameCounterKeywords veto GenericGameWords: a "game editor" or a media
// "player" is a program.
var GameCounterKeywords = []string{
	"player", "editor", "sdk", "engine", "launcher", "store", "studio", "tool", "maker",
}

// ProgramExecutables maps well-known executable basenames to their category.
var ProgramExecutables = map[string]types.Category{
	"chrome.exe":              types.CategoryBrowsers,
	"firefox.exe":             types.CategoryBrowsers,
	"msedge.exe":              types.CategoryBrowsers,
	"opera.exe":               types.CategoryBrowsers,
	"iexplore.exe":            types.CategoryBrowsers,
	"brave.exe":               types.CategoryBrowsers,
	"winword.exe":             types.CategoryOffice,
	"excel.exe":               types.CategoryOffice,
	"powerpnt.exe":            types.CategoryOffice,
	"outlook.exe":             types.CategoryOffice,
	"libreoffice.exe":         types.CategoryOffice,
	"soffice.exe":             types.CategoryOffice,
	"soffice.bin":             types.CategoryOffice,
	"pycharm64.exe":           types.CategoryDevelopment,
	"pycharm.exe":             types.CategoryDevelopment,
	"idea64.exe":              types.CategoryDevelopment,
	"idea.exe":                types.CategoryDevelopment,
	"code.exe":                types.CategoryDevelopment,
	"devenv.exe":              types.CategoryDevelopment,
	"atom.exe":                types.CategoryDevelopment,
	"sublime_text.exe":        types.CategoryDevelopment,
	"notepad++.exe":           types.CategoryDevelopment,
	"vlc.exe":                 types.CategoryMultimedia,
	"wmplayer.exe":            types.CategoryMultimedia,
	"spotify.exe":             types.CategoryMultimedia,
	"itunes.exe":              types.CategoryMultimedia,
	"audacity.exe":            types.CategoryMultimedia,
	"photoshop.exe":           types.CategoryGraphics,
	"gimp.exe":                types.CategoryGraphics,
	"gimp-2.10.exe":           types.CategoryGraphics,
	"blender.exe":             types.CategoryGraphics,
	"obs64.exe":               types.CategoryUtilities,
	"obs32.exe":               types.CategoryUtilities,
	"utorrent.exe":            types.CategoryUtilities,
	"qbittorrent.exe":         types.CategoryUtilities,
	"filezilla.exe":           types.CategoryUtilities,
	"7zfm.exe":                types.CategoryUtilities,
	"explorer.exe":            types.CategorySystemTools,
	"taskmgr.exe":             types.CategorySystemTools,
	"cmd.exe":                 types.CategorySystemTools,
	"powershell.exe":          types.CategorySystemTools,
	"regedit.exe":             types.CategorySystemTools,
	"control.exe":             types.CategorySystemTools,
	"discord.exe":             types.CategoryMessengers,
	"telegram.exe":            types.CategoryMessengers,
	"skype.exe":               types.CategoryMessengers,
	"zoom.exe":                types.CategoryMessengers,
	"slack.exe":               types.CategoryMessengers,
	"steam.exe":               types.CategoryGameLaunchers,
	"epicgameslauncher.exe":   types.CategoryGameLaunchers,
	"battle.net.exe":          types.CategoryGameLaunchers,
	"battle.net launcher.exe": types.CategoryGameLaunchers,
	"origin.exe":              types.CategoryGameLaunchers,
	"eadesktop.exe":           types.CategoryGameLaunchers,
	"goggalaxy.exe":           types.CategoryGameLaunchers,
	"galaxyclient.exe":        types.CategoryGameLaunchers,
	"ubisoftconnect.exe":      types.CategoryGameLaunchers,
	"riotclientservices.exe":  types.CategoryGameLaunchers,
}

// ProgramKeywords are substrings of program names and install paths.
var ProgramKeywords = []string{
	"visual studio", "pycharm", "intellij idea", "android studio",
	"google chrome", "mozilla firefox", "microsoft edge", "opera browser",
	"microsoft office", "libreoffice", "openoffice",
	"adobe photoshop", "adobe illustrator", "adobe premiere", "adobe acrobat",
	"autodesk autocad", "autodesk maya", "autodesk 3ds max",
	"obs studio", "vlc media player", "windows media player",
	"control panel", "панель управления", "диспетчер задач", "task manager",
	"command prompt", "powershell", "terminal",
	"steam", "epic games launcher", "battle.net", "origin client", "gog galaxy", "uplay", "ubisoft connect",
	"utorrent", "bittorrent", "discord", "telegram desktop", "skype", "zoom meetings",
	"audacity", "blender", "gimp", "notepad++", "sublime text", "vs code",
}

// InstalledProgramDirs are directory fragments of the standard program and
// system install locations.
var InstalledProgramDirs = []string{
	"/program files/",
	"/program files (x86)/",
	"/windows/system32/",
	"/windows/syswow64/",
}

// ExecutableExtensions are extensions of directly runnable programs.
var ExecutableExtensions = set(".exe", ".msi", ".com")

// ContentExtensions maps file extensions to content categories.
var ContentExtensions = extensionMap(map[types.Category][]string{
	types.CategoryDocuments: {
		".txt", ".md", ".log", ".doc", ".docx", ".rtf", ".odt", ".tex", ".json", ".xml",
		".yaml", ".yml", ".ini", ".cfg", ".pdf", ".xls", ".xlsx", ".ods", ".ppt", ".pptx",
		".odp", ".csv", ".epub", ".mobi", ".djvu", ".fb2",
	},
	types.CategoryImages: {
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".ico", ".svg", ".tiff", ".tif", ".webp",
		".psd", ".ai", ".raw", ".heic", ".heif",
	},
	types.CategoryVideo: {
		".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mpeg", ".mpg", ".m4v",
	},
	types.CategoryAudio: {
		".mp3", ".wav", ".ogg", ".flac", ".aac", ".m4a", ".wma", ".opus",
	},
	types.CategoryArchives: {
		".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".iso", ".tgz",
	},
	types.CategoryDevFiles: {
		".py", ".pyw", ".js", ".html", ".css", ".java", ".class", ".cpp", ".c", ".h",
		".hpp", ".cs", ".sh", ".bat", ".cmd", ".ps1", ".php", ".rb", ".go", ".swift", ".kt",
		".kts", ".sql", ".ipynb", ".jar", ".sln", ".csproj", ".vb", ".ts", ".rs",
	},
})

// Site maps a URL fragment to the category of links that contain it.
type Site struct {
	Fragment string
	Category types.Category
}

// KnownSites is checked in order against the scheme-less, folded URL.
var KnownSites = []Site{
	{"docs.google.com", types.CategoryDocumentsOnline},
	{"drive.google.com", types.CategoryCloudFiles},
	{"onedrive.live.com", types.CategoryCloudFiles},
	{"dropbox.com", types.CategoryCloudFiles},
	{"youtube.com", types.CategoryMediaOnline},
	{"youtu.be", types.CategoryMediaOnline},
	{"twitch.tv", types.CategoryMediaOnline},
	{"github.com", types.CategoryDevOnline},
	{"gitlab.com", types.CategoryDevOnline},
	{"figma.com", types.CategoryDesignOnline},
	{"store.steampowered.com", types.CategoryGamesStore},
	{"epicgames.com/store", types.CategoryGamesStore},
	{"gog.com", types.CategoryGamesStore},
}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

func extensionMap(byCategory map[types.Category][]string) map[string]types.Category {
	m := make(map[string]types.Category)
	for cat, exts := range byCategory {
		for _, ext := range exts {
			m[ext] = cat
		}
	}
	return m
}
