package main

import (
	"regexp"
	"strings"
)

const (
	componentAnnotationTag  = "@component"
	extendableAnnotationTag = "@extendable"
)

type Annotation struct {
	properties map[string]string
}

func (a Annotation) Named() (named string, found bool) {
	named, found = a.properties["named"]
	return named, found
}

// parseAnnotation extracts the annotation line starting with tag from a doc
// comment and parses its properties.
func parseAnnotation(docText string, tag string) (Annotation, bool) {
	for _, line := range strings.Split(docText, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, tag) {
			return Annotation{properties: parseProperties(line, tag)}, true
		}
	}
	return Annotation{properties: map[string]string{}}, false
}

// regex to match key=value or key="value" patterns
var propertyRe = regexp.MustCompile(`(\w+)=(?:"([^"]*)"|(\w+))`)

func parseProperties(line string, tag string) map[string]string {
	properties := make(map[string]string)

	content := strings.TrimSpace(strings.TrimPrefix(line, tag))
	if content == "" {
		return properties
	}

	for _, match := range propertyRe.FindAllStringSubmatch(content, -1) {
		key := match[1]
		// match[2] is quoted value, match[3] is unquoted value
		value := match[2]
		if value == "" {
			value = match[3]
		}
		properties[key] = value
	}

	return properties
}
