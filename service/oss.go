package service

import (
	"Tripper/config"
	ossclient "Tripper/pkg/oss"
	"Tripper/pkg/snowflake"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage 表单图片上传，category 决定 objectKey 前缀（avatar / place）
	UploadImage(ctx context.Context, category string, header *multipart.FileHeader) (string, error)

	// DeleteByURL 删除本桶对象，外链 URL 直接忽略
	DeleteByURL(ctx context.Context, rawURL string) error
}

type OssService struct {
	Client     *oss.Client
	BucketName string
	PublicHost string
}

func NewOssService(cfg *config.OssConfig) IOssService {
	return &OssService{
		Client:     ossclient.NewClient(cfg),
		BucketName: cfg.Bucket,
		PublicHost: fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Endpoint),
	}
}

func (s *OssService) UploadImage(ctx context.Context, category string, header *multipart.FileHeader) (string, error) {

	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return "", fmt.Errorf("missing image")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return "", fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// 要能 Seek，否则读头校验后无法重传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}
	ext, ok := allowedMime[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	objectKey := fmt.Sprintf("%s/%s/%s%s",
		category,
		time.Now().Format("2006/01/02"),
		snowflake.GenObjectKey(),
		ext,
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return "", err
	}

	return s.PublicHost + "/" + objectKey, nil
}

func (s *OssService) DeleteByURL(ctx context.Context, rawURL string) error {
	objectKey, ok := strings.CutPrefix(rawURL, s.PublicHost+"/")
	if !ok || objectKey == "" {
		return nil
	}

	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
