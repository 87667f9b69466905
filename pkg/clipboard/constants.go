package clipboard

const (
	dataDirName     = "data"
	metadataDirName = "metadata"
	rawDataFileName = "rawdata.clipboard"

	ignoreFileName        = "ignore"
	ignoreSecretFileName  = "ignore_secret"
	lockFileName          = "lock"
	notesFileName         = "notes"
	originalFilesFileName = "original_files"
	scriptFileName        = "script"
	scriptConfigFileName  = "script_config"
	versionFileName       = "version"
)

// StorageProtocolVersion is the on-disk format version written to every
// clipboard's version marker each time the clipboard is opened.
const StorageProtocolVersion = "1"
