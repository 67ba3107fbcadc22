// Package shell renders the command text that pyactivate prints for the
// calling shell to eval, and the hook snippets (chpwd for Zsh,
// PROMPT_COMMAND for Bash, --on-variable for Fish) that call pyactivate on
// directory change.
package shell
