package types

// Category is the fine-grained classification label of an icon.
type Category string

// Categories, in display order.
const (
	CategoryFolders         Category = "Folders"
	CategorySystemItems     Category = "System Items"
	CategoryGames           Category = "Games"
	CategoryGamesStore      Category = "Games (Store)"
	CategoryPrograms        Category = "Programs"
	CategoryBrowsers        Category = "Browsers"
	CategoryOffice          Category = "Office"
	CategoryDevelopment     Category = "Development"
	CategoryMultimedia      Category = "Multimedia"
	CategoryGraphics        Category = "Graphics and 3D"
	CategoryUtilities       Category = "Utilities"
	CategorySystemTools     Category = "System Tools"
	CategoryMessengers      Category = "Messengers"
	CategoryGameLaunchers   Category = "Game Launchers"
	CategoryDocuments       Category = "Documents"
	CategoryImages          Category = "Images"
	CategoryVideo           Category = "Video"
	CategoryAudio           Category = "Audio"
	CategoryArchives        Category = "Archives"
	CategoryDevFiles        Category = "Dev Files"
	CategoryDocumentsOnline Category = "Documents (Online)"
	CategoryMediaOnline     Category = "Media (Online)"
	CategoryDevOnline       Category = "Development (Online)"
	CategoryDesignOnline    Category = "Design (Online)"
	CategoryCloudFiles      Category = "Files (Cloud)"
	CategoryInternetLinks   Category = "Internet Links"
	CategoryShortcutsOther  Category = "Shortcuts (Other)"
	CategoryFilesOther      Category = "Files (Other)"
	CategoryUnknown         Category = "Unknown"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryFolders,
	CategorySystemItems,
	CategoryGames,
	CategoryGamesStore,
	CategoryPrograms,
	CategoryBrowsers,
	CategoryOffice,
	CategoryDevelopment,
	CategoryMultimedia,
	CategoryGraphics,
	CategoryUtilities,
	CategorySystemTools,
	CategoryMessengers,
	CategoryGameLaunchers,
	CategoryDocuments,
	CategoryImages,
	CategoryVideo,
	CategoryAudio,
	CategoryArchives,
	CategoryDevFiles,
	CategoryDocumentsOnline,
	CategoryMediaOnline,
	CategoryDevOnline,
	CategoryDesignOnline,
	CategoryCloudFiles,
	CategoryInternetLinks,
	CategoryShortcutsOther,
	CategoryFilesOther,
	CategoryUnknown,
}

// Bucket is one of the four coarse placement groups the layout engine fills.
type Bucket int

// Buckets in layout order. Later buckets avoid the extents of earlier ones.
const (
	BucketFolders Bucket = iota
	BucketGames
	BucketContent
	BucketProgramsAndOther
)

// AllBuckets lists the buckets in layout order.
var AllBuckets = []Bucket{BucketFolders, BucketGames, BucketContent, BucketProgramsAndOther}

func (b Bucket) String() string {
	switch b {
	case BucketFolders:
		return "folders"
	case BucketGames:
		return "games"
	case BucketContent:
		return "content"
	case BucketProgramsAndOther:
		return "programs_and_other"
	default:
		return "unknown"
	}
}

// ParseBucket is the inverse of Bucket.String.
func ParseBucket(s string) (Bucket, error) {
	for _, b := range AllBuckets {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, ErrBucketUnknown
}

// MarshalText encodes the bucket by name so placement plans stay readable.
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a bucket name written by MarshalText.
func (b *Bucket) UnmarshalText(text []byte) error {
	parsed, err := ParseBucket(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
