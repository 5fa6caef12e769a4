package bootstrap

// User-facing progress messages
const (
	MsgInstallingTools   = "Installing required tools: %s"
	MsgCheckingAsdf      = "Checking for asdf"
	MsgUpdatingAsdf      = "Updating asdf"
	MsgEnsureFiles       = "Making sure important files exist"
	MsgInstallingAntigen = "Installing latest version of Antigen to %s"
	MsgWritingBaseConfig = "Creating/updating zsh base config at %s"
	MsgLinkingBaseConfig = "Making sure .zshrc reads from base config"
	MsgAddingSourceLine  = "Adding source line to .zshrc"
	MsgCheckingShell     = "Checking default shell"
	MsgChangingShell     = "Changing default shell to zsh"
	MsgDone              = "Done! You probably have to log out and back in again. Enjoy!"

	MsgShellNotFound = "unable to change default shell: zsh not found on PATH"
)
