package bootstrap

// BaseConfigTemplate is the full content of ~/.zshrc-base.zsh. It is
// written verbatim on every run; local edits to that file do not
// survive. Anything the user wants to keep belongs in .zshrc, which
// only ever gets the source line appended.
const BaseConfigTemplate = `
# Andy's base zsh config

# Run the following command to install or update this config:
# go run github.com/arthur-debert/zshboot/cmd/zshboot@latest

# init antigen
source ~/.antigen.zsh

# init oh-my-zsh
antigen use oh-my-zsh

# default oh-my-zsh plugins
antigen bundle git
antigen bundle asdf
antigen bundle kubectl

# third-party oh-my-zsh plugins
antigen bundle zsh-users/zsh-autosuggestions
ZSH_AUTOSUGGEST_STRATEGY=(completion history)
ZSH_AUTOSUGGEST_USE_ASYNC=true

antigen bundle zsh-users/zsh-completions
antigen bundle zsh-users/zsh-syntax-highlighting # must be last

# specify theme
antigen theme romkatv/powerlevel10k

# apply config
antigen apply

# my settings :)
export VISUAL=nvim
`
