package storage

import "fmt"

// ImageURL maps (server base URL, entity folder, entity id, file name) to the
// stable public URL recorded alongside each stored image. It is the single
// source of truth for the path shape. Note that the URL is informational
// metadata: no route serves raw files at this path.
func ImageURL(serverURL string, folder Folder, entityID uint64, fileName string) string {
	return fmt.Sprintf("%s/%s/%d/images/%s", serverURL, folder, entityID, fileName)
}
