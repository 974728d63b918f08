// Package gdrive lists the spreadsheet files in a Google Drive folder and downloads their content.
package gdrive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"
)

const (
	NativeSpreadsheet = "application/vnd.google-apps.spreadsheet"
	Workbook          = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type File struct {
	ID       string
	Name     string
	MimeType string
}

func (f File) IsNative() bool {
	return f.MimeType == NativeSpreadsheet
}

func (f File) String() string {
	return fmt.Sprintf("%v (%v)", f.Name, f.MimeType)
}

type Service struct {
	drive *drive.Service
}

func NewService(gdrive *drive.Service) *Service {
	return &Service{
		drive: gdrive,
	}
}

// List returns the Google Sheets spreadsheets and xlsx workbooks in the folder, in the order
// returned by Drive.
func (s *Service) List(ctx context.Context, folder string) ([]File, error) {
	files := []File{}
	page := ""

	for {
		call := s.drive.Files.List().
			Q(Query(folder)).
			Fields("nextPageToken, files(id, name, mimeType)").
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true).
			Context(ctx)

		if page != "" {
			call.PageToken(page)
		}

		list, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("unable to list files in folder %v (%w)", folder, err)
		}

		for _, f := range list.Files {
			files = append(files, File{
				ID:       f.Id,
				Name:     f.Name,
				MimeType: f.MimeType,
			})
		}

		if page = list.NextPageToken; page == "" {
			break
		}
	}

	return files, nil
}

// Download copies the raw content of a (non-native) file to w.
func (s *Service) Download(ctx context.Context, id string, w io.Writer) error {
	response, err := s.drive.Files.Get(id).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return err
	}

	defer response.Body.Close()

	if _, err := io.Copy(w, response.Body); err != nil {
		return err
	}

	return nil
}

// Query builds the Drive search query for the spreadsheet files directly under a folder.
func Query(folder string) string {
	return fmt.Sprintf("'%v' in parents and trashed = false and (mimeType='%v' or mimeType='%v')",
		escape(folder),
		NativeSpreadsheet,
		Workbook)
}

func escape(v string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
}
