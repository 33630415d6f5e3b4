package settings

// FileName is the settings file inside the app's private data directory.
const FileName = "launcher_config.json"

// Keys the store itself knows about. Everything else is opaque to it.
const (
	KeyStartupMusic     = "startup_music"
	KeyTheme            = "theme"
	KeyLooping          = "looping"
	KeyShuffle          = "shuffle"
	KeyCurrentSong      = "current_song"
	KeyDebug            = "debug"
	KeyUserscript       = "userscript"
	KeyForceShowBackBtn = "force_show_back_btn"
	KeyWindowBarColor   = "window_bar_color"
	KeyWatchOnReply     = "watch_on_reply"
	KeyVersionNotes     = "version_notes"
	KeyIsPlaying        = "is_playing"
	KeyAllThemes        = "all_themes"
	KeySongs            = "songs"
	KeyOrderedSongs     = "ordered_songs"
	KeyAwooEndpoint     = "awoo_endpoint"
)

// AwooEndpoint is the board the UI talks to.
const AwooEndpoint = "https://boards.dangeru.us"

// Themes in menu order.
var Themes = []string{"normal", "vaporwave", "noir", "burg", "unity", "empire", "classy"}

type entry struct{ key, value string }

// firstRun is only written when there was nothing usable on disk.
var firstRun = []entry{
	{KeyStartupMusic, "false"},
	{KeyTheme, "normal"},
	{KeyLooping, "false"},
	{KeyShuffle, "false"},
	{KeyCurrentSong, ""},
	{KeyDebug, "false"},
}

// fillIfEmpty is applied on every start, keeping whatever the user chose.
// Infinite scrolling is defaulted by the userscript itself.
var fillIfEmpty = []entry{
	{KeyUserscript, "true"},
	{KeyForceShowBackBtn, "true"},
	{KeyWindowBarColor, "-25"},
	{KeyWatchOnReply, "true"},
}

// ReconciledKeys are guaranteed non-empty once the store is open.
var ReconciledKeys = []string{
	KeyUserscript, KeyForceShowBackBtn, KeyWindowBarColor, KeyWatchOnReply,
	KeyVersionNotes, KeyIsPlaying, KeyAllThemes, KeySongs, KeyOrderedSongs, KeyAwooEndpoint,
}
