package cfn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStackBuild(t *testing.T) {
	bucket := testBucket{BucketName: "my-bucket"}
	fn := testFunction{FunctionName: "processor", Bucket: bucket}

	s := &Stack{Description: "test stack"}
	s.Add("DataBucket", bucket)
	s.Add("Processor", fn, "DataBucket")

	template, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, "2010-09-09", template.AWSTemplateFormatVersion)
	assert.Equal(t, "test stack", template.Description)
	require.Len(t, template.Resources, 2)

	bucketDef := template.Resources["DataBucket"]
	assert.Equal(t, "AWS::S3::Bucket", bucketDef.Type)
	assert.Equal(t, "my-bucket", bucketDef.Properties["BucketName"])

	fnDef := template.Resources["Processor"]
	assert.Equal(t, "AWS::Lambda::Function", fnDef.Type)
	assert.Equal(t, map[string]any{"Ref": "DataBucket"}, fnDef.Properties["Bucket"])
	assert.Equal(t, []string{"DataBucket"}, fnDef.DependsOn)
}

func TestStackBuild_ParametersAndOutputs(t *testing.T) {
	s := &Stack{
		Parameters: map[string]Parameter{
			"CodeBucket": {Type: "String", Description: "artifact bucket"},
		},
		Outputs: map[string]Output{
			"BucketName": {Value: map[string]any{"Ref": "DataBucket"}},
		},
	}
	s.Add("DataBucket", testBucket{BucketName: "my-bucket"})

	template, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, "String", template.Parameters["CodeBucket"].Type)
	assert.Equal(t, map[string]any{"Ref": "DataBucket"}, template.Outputs["BucketName"].Value)
}

func TestStackBuild_DuplicateLogicalID(t *testing.T) {
	s := &Stack{}
	s.Add("DataBucket", testBucket{BucketName: "a"})
	s.Add("DataBucket", testBucket{BucketName: "b"})

	_, err := s.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate logical ID")
}

func TestStackBuild_IdenticalResources(t *testing.T) {
	// Two equal resource values would make Ref resolution ambiguous.
	s := &Stack{}
	s.Add("BucketA", testBucket{BucketName: "same"})
	s.Add("BucketB", testBucket{BucketName: "same"})

	_, err := s.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identical")
}

func TestStackBuild_UnknownDependency(t *testing.T) {
	s := &Stack{}
	s.Add("DataBucket", testBucket{BucketName: "a"}, "MissingRole")

	_, err := s.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource")
}

func TestTemplateJSON(t *testing.T) {
	s := &Stack{}
	s.Add("DataBucket", testBucket{BucketName: "my-bucket"})

	template, err := s.Build()
	require.NoError(t, err)

	data, err := template.JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "AWSTemplateFormatVersion")
	assert.Contains(t, doc, "Resources")
}

func TestTemplateYAML(t *testing.T) {
	s := &Stack{}
	s.Add("DataBucket", testBucket{BucketName: "my-bucket"})

	template, err := s.Build()
	require.NoError(t, err)

	data, err := template.YAML()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	resources := doc["Resources"].(map[string]any)
	bucket := resources["DataBucket"].(map[string]any)
	assert.Equal(t, "AWS::S3::Bucket", bucket["Type"])
}
