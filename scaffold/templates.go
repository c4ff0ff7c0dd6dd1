package scaffold

// Fixed file contents written by the Cypress scaffold. Keeping them as
// named constants means content changes never touch the control flow.

const packageJSONTemplate = `{
  "name": "agent-tests",
  "version": "1.0.0",
  "main": "index.js",
  "scripts": {
  },
  "keywords": [],
  "author": "",
  "license": "ISC",
  "devDependencies": {
    "cypress": "latest",
    "uuid": "latest",
    "typescript": "latest"
  }
}
`

const gitignoreTemplate = `node_modules/
.cypress/
`

const cypressConfigTSTemplate = `import { defineConfig } from 'cypress'

export default defineConfig({
  defaultCommandTimeout: 10000,
  e2e: {

  },
})
`

const tsconfigTemplate = `{
  "compilerOptions": {
    "target": "es5",
    "lib": ["es5", "dom"],
    "types": ["cypress", "node"]
  },
  "include": ["**/*.ts"]
}
`

const cypressConfigJSTemplate = `const { defineConfig } = require('cypress')

module.exports = defineConfig({
  defaultCommandTimeout: 10000,
})
`
