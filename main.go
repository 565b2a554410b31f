// docnode2md renders deno doc output as Markdown and splices it into a
// README template.
package main

import "github.com/gaurav-prasanna/docnode2md/cmd"

func main() {
	cmd.Execute()
}
