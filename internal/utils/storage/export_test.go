package storage

var NewAwsS3WithClient = newAwsS3
