package checks

import (
	"context"
	"errors"
	"testing"

	"metabuild-hub/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRequiredFolders(t *testing.T) {
	assert.Equal(t, []string{"media", "thumbnails"}, RequiredFolders(""))
	assert.Equal(t, []string{"uploads", "thumbnails"}, RequiredFolders("/uploads/"))
}

func TestCheckStructure(t *testing.T) {
	folders := RequiredFolders("media")

	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "metabuild").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "metabuild", folders)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "metabuild").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "metabuild", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		missing, err := CheckStructure(context.Background(), mockClient, "metabuild", folders)
		assert.NoError(t, err)
		assert.Equal(t, folders, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "metabuild").Return(true, nil)

		for _, folder := range folders {
			folder := folder // per-iteration copy (go < 1.22 loop semantics)
			ch := make(chan minio.ObjectInfo, 1)
			ch <- minio.ObjectInfo{Key: folder + "/"}
			close(ch)
			mockClient.On("ListObjects", mock.Anything, "metabuild", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == folder+"/"
			})).Return((<-chan minio.ObjectInfo)(ch))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "metabuild", folders)
		assert.NoError(t, err)
		assert.Len(t, missing, 0)
	})

	t.Run("List Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "metabuild").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: errors.New("access denied")}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "metabuild", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		_, err := CheckStructure(context.Background(), mockClient, "metabuild", folders)
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestFixStructure(t *testing.T) {
	t.Run("Creates folders", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "metabuild", "media/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		err := FixStructure(context.Background(), mockClient, "metabuild", zap.NewNop(), []string{"media"})
		assert.NoError(t, err)
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
	})

	t.Run("Stops on error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "metabuild", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, errors.New("denied"))

		err := FixStructure(context.Background(), mockClient, "metabuild", zap.NewNop(), []string{"media", "thumbnails"})
		assert.Error(t, err)
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
	})
}
