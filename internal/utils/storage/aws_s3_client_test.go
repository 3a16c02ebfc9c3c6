package storage_test

import (
	"context"
	"io"
	"testing"

	"recipe-catalog/internal/utils/storage"
	"recipe-catalog/internal/utils/storage/storagetest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	puts    []*s3.PutObjectInput
	bodies  [][]byte
	deletes []string
}

func (c *recordingClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	c.puts = append(c.puts, in)
	c.bodies = append(c.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func (c *recordingClient) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	c.deletes = append(c.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestAwsS3_UploadFile(t *testing.T) {
	client := &recordingClient{}
	store := storage.NewAwsS3WithClient(client, "recipes", "eu-west-1")

	key, err := store.UploadFile("abc", storagetest.FileHeader(t, "cover.png", storagetest.PNG), "images", storage.AllowImage...)
	require.NoError(t, err)

	assert.Equal(t, "images/abc", key)
	require.Len(t, client.puts, 1)
	assert.Equal(t, "recipes", aws.ToString(client.puts[0].Bucket))
	assert.Equal(t, "image/png", aws.ToString(client.puts[0].ContentType))
	assert.Equal(t, storagetest.PNG, client.bodies[0])

	assert.Equal(t, "https://recipes.s3.eu-west-1.amazonaws.com/images/abc", store.GetPublicLinkKey(key))
}

func TestAwsS3_RejectsNonImage(t *testing.T) {
	client := &recordingClient{}
	store := storage.NewAwsS3WithClient(client, "recipes", "eu-west-1")

	_, err := store.UploadFile("abc", storagetest.FileHeader(t, "notes.png", []byte("plain text")), "images", storage.AllowImage...)
	assert.ErrorIs(t, err, storage.ErrFileTypeNotAllowed)
	assert.Empty(t, client.puts)
}

func TestAwsS3_DeleteFile(t *testing.T) {
	client := &recordingClient{}
	store := storage.NewAwsS3WithClient(client, "recipes", "eu-west-1")

	require.NoError(t, store.DeleteFile("images/abc"))
	assert.Equal(t, []string{"images/abc"}, client.deletes)
}
