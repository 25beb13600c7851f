// Package upload はアップロードされたプロフィール画像のディスクストレージを提供します。
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedImageType is returned when an uploaded file is not a JPEG or PNG image.
// Detection is content-based, not extension-based.
var ErrUnsupportedImageType = errors.New("only JPEG and PNG images are allowed")

// DiskStorage は画像ファイルをローカルディレクトリに保存します。
// ファイル名はタイムスタンプ接頭辞付き（<unixミリ秒>-<元ファイル名>）で、
// 衝突確率は無視できるものとして扱います。
type DiskStorage struct {
	dir string
}

// NewDiskStorage は指定されたディレクトリを作成し、DiskStorageを生成します。
func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Dir は保存先ディレクトリを返します。静的配信のマウントに使用します。
func (s *DiskStorage) Dir() string {
	return s.dir
}

// Save はアップロードファイルのコンテンツをスニッフィングし、
// JPEG/PNGであればディスクに書き込んで保存ファイル名を返します。
// それ以外のコンテンツはErrUnsupportedImageTypeで拒否します。
func (s *DiskStorage) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") {
		return "", ErrUnsupportedImageType
	}

	// スニッフィングで読み進めた分を先頭に巻き戻す
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filename, nil
}

// Remove は保存済みファイルを削除します。
// 重複メールで拒否された作成リクエストのステージ済みファイル掃除に使用します。
func (s *DiskStorage) Remove(filename string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}
