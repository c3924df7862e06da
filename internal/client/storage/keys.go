package storage

// Persisted key namespace. These names are shared with other builds of the
// app against the same local store and must not change.
const (
	KeyAccessToken    = "accessToken"
	KeyUser           = "user"
	KeySessionCookies = "session_cookies"
	KeyLikedPosts     = "liked_posts"
	KeyOnboarding     = "hasCompletedOnboarding"

	KeyLookbookFolders = "lookbook_folders"
	KeySavedStyles     = "saved_styles"
	KeyAppSettings     = "app_settings"
)

// SessionKeys are wiped together when a session is invalidated.
var SessionKeys = []string{KeyAccessToken, KeyUser, KeySessionCookies}

// BackupKeys is the fixed set snapshotted by Backup/Restore. Data
// portability only; this is not a crash-recovery mechanism.
var BackupKeys = []string{
	KeyAccessToken,
	KeyUser,
	KeySessionCookies,
	KeyLikedPosts,
	KeyOnboarding,
	KeyLookbookFolders,
	KeySavedStyles,
	KeyAppSettings,
}
