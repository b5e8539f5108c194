package assets

// Logical directories and files inside an asset set.
const (
	TemplatesDir = "templates"
	SchemaDir    = "schema"
	SchemaFile   = "resume.schema.json"
)

// AssetLoader defines the contract for loading résumé templates and the schema.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by file name (e.g. "default.html").
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name is not a valid template path.
	LoadTemplate(name string) (string, error)

	// LoadSchema loads the JSON schema describing a résumé collection.
	// Returns ErrSchemaNotFound if the schema doesn't exist.
	LoadSchema() (string, error)
}

// templatePath returns the logical asset path of a template name.
func templatePath(name string) string {
	return TemplatesDir + "/" + name
}

// schemaPath returns the logical asset path of the schema.
func schemaPath() string {
	return SchemaDir + "/" + SchemaFile
}
