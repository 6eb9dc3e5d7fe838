// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package website

type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type Example struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Files       []File `json:"files,omitempty"`
}

var examples = []Example{
	{
		ID:          "jinja-resource",
		DisplayName: "Jinja resource template",
		Files: []File{{
			Name: "vm.jinja.soy",
			Content: `{namespace vm_template}

{template .main}
  {@param name: string}
resources:
- name: {{ env['deployment'] }}-{$name}
  type: compute.v1.instance
  properties:
    zone: {{ properties['zone'] }}
{/template}
`,
		}},
	},
	{
		ID:          "multiline-commands",
		DisplayName: "Commands split across lines",
		Files: []File{{
			Name: "outputs.soy",
			Content: `{template .outputs}
  {@param spec: ?}
outputs:
{for $output in
    $spec.outputs}
  - name: {$output.name} // exported to the UI
{/for}
{/template}
`,
		}},
	},
}

const usage = `autogen-tpl preprocessing service

POST /preprocess   {"files":[{"name":"a.soy","data":"..."}]}
GET  /examples     list of example templates
GET  /examples/ID  example template files
GET  /health
`
