package main

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/hupe1980/crystio/blobstore"
	"github.com/hupe1980/crystio/blobstore/minio"
	"github.com/hupe1980/crystio/blobstore/s3"
)

// reflectionSuffix selects files when a directory or prefix is expanded.
const reflectionSuffix = ".refl"

// openStore builds the blob store selected by the persistent flags.
// MinIO credentials come from MINIO_ACCESS_KEY and MINIO_SECRET_KEY; AWS
// credentials from the default provider chain.
func openStore(ctx context.Context, cmd *cobra.Command) (blobstore.BlobStore, error) {
	store, err := openBaseStore(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if mb := GetInt(cmd, "cache-mb"); mb > 0 {
		if _, local := store.(*blobstore.LocalStore); !local {
			return blobstore.NewCachingStore(store, int64(mb)<<20, nil), nil
		}
	}
	return store, nil
}

func openBaseStore(ctx context.Context, cmd *cobra.Command) (blobstore.BlobStore, error) {
	bucket := GetString(cmd, "s3-bucket")
	endpoint := GetString(cmd, "minio-endpoint")
	prefix := GetString(cmd, "prefix")

	switch {
	case endpoint != "":
		if bucket == "" {
			return nil, errors.New("--minio-endpoint requires --s3-bucket")
		}
		client, err := miniogo.New(endpoint, &miniogo.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: !GetFlag(cmd, "minio-insecure"),
		})
		if err != nil {
			return nil, err
		}
		return minio.NewStore(client, bucket, prefix), nil
	case bucket != "":
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		return s3.NewStore(awss3.NewFromConfig(cfg), bucket, prefix), nil
	default:
		return blobstore.NewLocalStore(""), nil
	}
}

// expandPaths replaces local directories, and bucket prefixes ending in "/",
// with the reflection files below them. Other arguments pass through.
func expandPaths(ctx context.Context, store blobstore.BlobStore, args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if _, local := store.(*blobstore.LocalStore); local {
			if fi, err := os.Stat(arg); err == nil && fi.IsDir() {
				names, err := blobstore.NewLocalStore(arg).List(ctx, "")
				if err != nil {
					return nil, err
				}
				for _, n := range names {
					if strings.HasSuffix(n, reflectionSuffix) {
						out = append(out, filepath.Join(arg, filepath.FromSlash(n)))
					}
				}
				continue
			}
			out = append(out, arg)
			continue
		}

		if !strings.HasSuffix(arg, "/") {
			out = append(out, arg)
			continue
		}
		names, err := store.List(ctx, arg)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if path.Ext(n) == reflectionSuffix {
				out = append(out, n)
			}
		}
	}
	return out, nil
}
