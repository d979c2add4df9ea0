package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/linskybing/syncbridge-go/minio"
	minioSDK "github.com/minio/minio-go/v7"
)

// Object storage helpers for message attachments. Declared as vars so
// unit tests can stub the store out.

var UploadObject = func(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}
	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

var DownloadObject = func(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := minio.Client.GetObject(ctx, minio.BucketName, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

var DeleteObject = func(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
