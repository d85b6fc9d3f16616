package vision

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rekognition"
)

// Rekognition detects labels on objects already stored in S3.
type Rekognition struct {
	client *rekognition.Rekognition
	bucket string
	prefix string
}

func NewRekognition(bucket, region, prefix string) (*Rekognition, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return &Rekognition{
		client: rekognition.New(sess),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (r *Rekognition) remotePath(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + "/" + key
}

func (r *Rekognition) DetectLabels(storageKey string, maxLabels int64, minConfidence float64) (map[string]float64, error) {
	input := rekognition.DetectLabelsInput{
		Image: &rekognition.Image{
			S3Object: &rekognition.S3Object{
				Bucket: aws.String(r.bucket),
				Name:   aws.String(r.remotePath(storageKey)),
			},
		},
		MaxLabels:     aws.Int64(maxLabels),
		MinConfidence: aws.Float64(minConfidence),
	}
	output, err := r.client.DetectLabels(&input)
	if err != nil {
		return nil, err
	}
	result := make(map[string]float64, len(output.Labels))
	for _, label := range output.Labels {
		if label.Name == nil || label.Confidence == nil {
			continue
		}
		result[*label.Name] = *label.Confidence
	}
	return result, nil
}
