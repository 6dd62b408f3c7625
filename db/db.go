package db

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/stardex/model"
	"github.com/pkg/errors"
)

// DynamoDB caps BatchGetItem at 100 keys.
const maxBatchKeys = 100

// Store looks up chart metadata keyed by chart id.
type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewStore(endpoint, region, table string) (*Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return &Store{client: dynamodb.New(sess), table: table}, nil
}

func (s *Store) GetChartMetadatas(ids []string) (map[string]model.ChartMetadata, error) {
	res := make(map[string]model.ChartMetadata)
	for start := 0; start < len(ids); start += maxBatchKeys {
		end := min(start+maxBatchKeys, len(ids))
		if err := s.getBatch(ids[start:end], res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (s *Store) getBatch(ids []string, res map[string]model.ChartMetadata) error {
	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range ids {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		})
	}

	request := map[string]*dynamodb.KeysAndAttributes{
		s.table: {Keys: keys},
	}
	// unprocessed keys come back when the table throttles
	for len(request) > 0 {
		out, err := s.client.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return errors.Wrap(err, "error from DynamoDB")
		}
		for _, item := range out.Responses[s.table] {
			pk := item["PK"]
			if pk == nil || pk.S == nil {
				continue
			}
			res[*pk.S] = model.ChartMetadata{
				Title:  stringAttr(item, "Title"),
				Artist: stringAttr(item, "Artist"),
			}
		}
		request = out.UnprocessedKeys
	}
	return nil
}

func stringAttr(item map[string]*dynamodb.AttributeValue, name string) string {
	if v, ok := item[name]; ok && v.S != nil {
		return *v.S
	}
	return ""
}
