package project

import (
	"github.com/tidwall/gjson"
)

const environmentPackageJSON = `{
  "name": "my-lib",
  "workspaces": [
    "playground/terminal",
    "playground/browser"
  ],
  "scripts": {
    "play:browser": "npm run dev --workspace=playground/browser",
    "play:terminal": "npm run start --workspace=playground/terminal",
    "test": "vitest"
  },
  "devDependencies": {
    "jsdom": "^26.0.0",
    "vitest": "^3.0.0"
  }
}
`

const environmentReadme = "# my-lib\n\n## Node Support\n\nRuns on Node.js.\n\n## Browser Support\n\nRuns in browsers.\n\n" +
	"```javascript\n// Browser environment\nadd(1, 2);\n```\n\n## License\n"

func (s *FilesTestSuite) seedEnvironments() {
	s.write("playground/terminal/package.json", `{"name":"playground-terminal"}`)
	s.write("playground/terminal/src/index.ts", "console.log(1);\n")
	s.write("playground/browser/package.json", `{"name":"playground-browser"}`)
	s.write("playground/browser/vite.config.js", `path.resolve(__dirname, "../../dist")`)
	s.write("test/core/math.test.ts", "core")
	s.write("test/terminal/cli.test.ts", "terminal")
	s.write("test/browser/dom.test.ts", "browser")
	s.write("tsconfig.json", `{"extends":"personal-style-guide/typescript/browser","include":["src"]}`)
	s.write("eslint.config.js", "import eslintBrowser from \"personal-style-guide/eslint/browser\";\n\nexport default [...eslintBrowser];\n")
	s.write("vitest.config.ts", "export default defineConfig({\n  test: {\n    workspace: [{ test: { name: \"browser\" } }],\n    environment: \"happy-dom\",\n  },\n});\n")
	s.write("tsup.config.ts", "const config = {\n  platform: \"neutral\",\n};\n")
	s.write("package.json", environmentPackageJSON)
	s.write("README.md", environmentReadme)
}

func (s *FilesTestSuite) TestRemoveBrowserSupport() {
	s.seedEnvironments()

	s.Require().NoError(s.project.RemoveBrowserSupport())

	s.True(s.exists("playground/package.json"))
	s.True(s.exists("playground/src/index.ts"))
	s.False(s.exists("playground/terminal"))
	s.False(s.exists("playground/browser"))
	s.Equal(`{"name":"playground-terminal"}`, s.read("playground/package.json"))

	s.True(s.exists("test/math.test.ts"))
	s.True(s.exists("test/cli.test.ts"))
	s.False(s.exists("test/dom.test.ts"))
	s.False(s.exists("test/core"))

	s.Equal(nodeTSConfig, gjson.Get(s.read("tsconfig.json"), "extends").String())
	s.Equal("import eslintNode from \"personal-style-guide/eslint/browser\";\n\nexport default [...eslintNode];\n", s.read("eslint.config.js"))

	vitest := s.read("vitest.config.ts")
	s.NotContains(vitest, "workspace")
	s.Contains(vitest, `environment: "node"`)
	s.Contains(s.read("tsup.config.ts"), `platform: "node"`)

	pkg := s.read("package.json")
	s.Equal([]string{"playground"}, stringsOf(gjson.Get(pkg, "workspaces")))
	s.Equal("npm run start --workspace=playground", gjson.Get(pkg, "scripts.playground").String())
	s.False(gjson.Get(pkg, "scripts.play:browser").Exists())
	s.False(gjson.Get(pkg, "scripts.play:terminal").Exists())
	s.False(gjson.Get(pkg, "devDependencies.jsdom").Exists())
	s.True(gjson.Get(pkg, "devDependencies.vitest").Exists())

	s.Equal("# my-lib\n\n## Node Support\n\nRuns on Node.js.\n\n## License\n", s.read("README.md"))
}

func (s *FilesTestSuite) TestRemoveNodeSupport() {
	s.seedEnvironments()
	s.write("README.md", "# my-lib\n\n## Node Support\n\nRuns on Node.js.\n\n```javascript\n// Node environment\nadd(1, 2);\n```\n\n## Browser Support\n\nRuns in browsers.\n")

	s.Require().NoError(s.project.RemoveNodeSupport())

	s.Equal(`{"name":"playground-browser"}`, s.read("playground/package.json"))
	s.Equal(`path.resolve(__dirname, "../dist")`, s.read("playground/vite.config.js"))
	s.False(s.exists("playground/src/index.ts"))

	s.True(s.exists("test/math.test.ts"))
	s.True(s.exists("test/dom.test.ts"))
	s.False(s.exists("test/cli.test.ts"))

	s.Equal("personal-style-guide/typescript/browser", gjson.Get(s.read("tsconfig.json"), "extends").String())
	s.Contains(s.read("eslint.config.js"), "eslintBrowser")
	s.Contains(s.read("vitest.config.ts"), `environment: "jsdom"`)
	s.Contains(s.read("tsup.config.ts"), `platform: "browser"`)

	pkg := s.read("package.json")
	s.Equal([]string{"playground"}, stringsOf(gjson.Get(pkg, "workspaces")))
	s.Equal("npm run dev --workspace=playground", gjson.Get(pkg, "scripts.playground").String())
	s.False(gjson.Get(pkg, "scripts.play:browser").Exists())
	s.True(gjson.Get(pkg, "devDependencies.jsdom").Exists())

	s.Equal("# my-lib\n\n## Browser Support\n\nRuns in browsers.\n", s.read("README.md"))
}

func (s *FilesTestSuite) TestRemoveBrowserSupportWithoutPlayground() {
	s.write("package.json", environmentPackageJSON)

	err := s.project.RemoveBrowserSupport()
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to remove browser support")
}

func stringsOf(r gjson.Result) []string {
	var out []string
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	return out
}
