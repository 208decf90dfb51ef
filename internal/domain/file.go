package domain

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileType enumerates the kinds of nodes in the hierarchy.
type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// IsValidFileType reports whether t names a known file type.
func IsValidFileType(t string) bool {
	switch FileType(t) {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

// RootParentID is the sentinel parent id of top-level nodes.
const RootParentID = "0"

// ListPageSize is the fixed page size of file listings.
const ListPageSize = 20

// ThumbnailWidths are the derived sizes produced for every uploaded image.
var ThumbnailWidths = []int{500, 250, 100}

// FileNode represents a folder, plain file, or image in the hierarchy.
// LocalPath is empty for folders and holds the on-disk blob path otherwise;
// it is allocated at creation time and never derived from the name.
type FileNode struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Name      string             `bson:"name"`
	Type      FileType           `bson:"type"`
	ParentID  string             `bson:"parentId"`
	IsPublic  bool               `bson:"isPublic"`
	LocalPath string             `bson:"localPath,omitempty"`
}

// FileView is the public JSON representation of a file node.
// The storage path is internal and never exposed.
type FileView struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

// ToView converts a FileNode to its public representation.
func (f *FileNode) ToView() FileView {
	return FileView{
		ID:       f.ID.Hex(),
		UserID:   f.UserID.Hex(),
		Name:     f.Name,
		Type:     string(f.Type),
		IsPublic: f.IsPublic,
		ParentID: f.ParentID,
	}
}

// VisibleTo reports whether the node may be seen by the given principal.
// A nil principal is an anonymous reader.
func (f *FileNode) VisibleTo(principal *User) bool {
	if f.IsPublic {
		return true
	}
	return principal != nil && principal.ID == f.UserID
}

// FileRepository defines persistence operations for file nodes.
type FileRepository interface {
	Create(ctx context.Context, file *FileNode) (*FileNode, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*FileNode, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*FileNode, error)
	ListByParent(ctx context.Context, ownerID primitive.ObjectID, parentID string, page int) ([]*FileNode, error)
	SetVisibility(ctx context.Context, id, ownerID primitive.ObjectID, isPublic bool) (*FileNode, error)
}

// CreateFileInput carries the parameters of a file upload. Data is the
// base64-encoded content, required for non-folder types.
type CreateFileInput struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string
}

// FileContent is an open handle on a node's stored bytes together with the
// node it belongs to (for content-type negotiation by the caller).
type FileContent struct {
	Reader io.ReadCloser
	File   *FileNode
}

// FileService defines the use-case operations for the file registry.
// Every method that takes a principal expects it to be already authenticated;
// ReadContent accepts a nil principal for anonymous access to public files.
type FileService interface {
	Create(ctx context.Context, owner *User, in CreateFileInput) (*FileNode, error)
	Show(ctx context.Context, principal *User, fileID string) (*FileNode, error)
	List(ctx context.Context, owner *User, parentID string, page int) ([]*FileNode, error)
	SetVisibility(ctx context.Context, owner *User, fileID string, isPublic bool) (*FileNode, error)
	ReadContent(ctx context.Context, principal *User, fileID string, width int) (*FileContent, error)
}
