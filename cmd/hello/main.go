package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hello/internal/autostart"
	"hello/internal/content"
	"hello/internal/locale"
	"hello/internal/process"
	"hello/internal/system"
	"hello/internal/ui"
	"hello/pkg/config"
)

const (
	Version = "v1.0.0"
	Website = "https://github.com/hello-project/hello"
)

// HelloApp holds the wired application components
type HelloApp struct {
	prefs     *config.Preferences
	save      *config.SaveRecord
	catalog   *locale.Catalog
	pages     *content.Store
	autostart *autostart.Manager
	locale    string
}

var (
	// Command flags
	devMode bool
)

// Root command
var rootCmd = &cobra.Command{
	Use:     "hello",
	Short:   "hello - distribution welcome tool",
	Long:    buildWelcomeMessage(),
	Version: Version,
}

// Status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show welcome status",
	Long:  "Displays distribution info, active locale and autostart state",
	Run: func(cmd *cobra.Command, args []string) {
		if err := handleStatus(); err != nil {
			fmt.Printf("❌ Status failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// Locale command
var localeCmd = &cobra.Command{
	Use:   "locale [id]",
	Short: "Show or change the display language",
	Long:  "Shows the active locale and shipped languages, or switches to a new locale",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := handleLocale(args); err != nil {
			fmt.Printf("❌ Locale change failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// Pages command
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List informational pages",
	Long:  "Lists the informational pages shipped with the default locale",
	Run: func(cmd *cobra.Command, args []string) {
		if err := handlePages(); err != nil {
			fmt.Printf("❌ Page listing failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// Page command
var pageCmd = &cobra.Command{
	Use:   "page <name>",
	Short: "Show an informational page",
	Long:  "Prints an informational page in the active locale",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := handlePage(args[0]); err != nil {
			fmt.Printf("❌ Page display failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// Open command
var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a project link",
	Long:  "Opens a named project URL in the default browser",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := handleOpen(args[0]); err != nil {
			fmt.Printf("❌ Open failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// Install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Launch the system installer",
	Long:  "Starts the system installer when running from install media",
	Run: func(cmd *cobra.Command, args []string) {
		if err := handleInstall(); err != nil {
			fmt.Printf("❌ Install failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// Enable auto-start command
var enableCmd = &cobra.Command{
	Use:   "enable-autostart",
	Short: "Enable auto-start",
	Long:  "Registers the welcome tool to start on login",
	Run: func(cmd *cobra.Command, args []string) {
		if err := handleAutostart(true); err != nil {
			fmt.Printf("❌ Enable failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// Disable auto-start command
var disableCmd = &cobra.Command{
	Use:   "disable-autostart",
	Short: "Disable auto-start",
	Long:  "Removes the start-on-login registration",
	Run: func(cmd *cobra.Command, args []string) {
		if err := handleAutostart(false); err != nil {
			fmt.Printf("❌ Disable failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false,
		"run from a source checkout with project-relative paths")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(localeCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

func main() {
	err := rootCmd.Execute()
	system.Close()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildWelcomeMessage creates the welcome/help message
func buildWelcomeMessage() string {
	return fmt.Sprintf(`
┌─────────────────────────────────────┐
│           Welcome to hello          │
│                                     │
│   Pick your language, browse the    │
│   getting-started pages and set     │
│   up start-on-login.                │
│                                     │
│   %s                            │
└─────────────────────────────────────┘

Website: %s
`, Version, Website)
}

// newHelloApp wires the application components in dependency order
func newHelloApp() (*HelloApp, error) {
	if err := system.InitLogger(); err != nil {
		// Logging is best-effort for a one-shot tool
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	prefsPath := config.SystemPreferencesPath()
	if devMode {
		prefsPath = "data/preferences.json"
	}

	prefs, err := config.LoadPreferences(prefsPath)
	if err != nil {
		return nil, err
	}
	if devMode {
		prefs.ApplyDevOverrides()
	}

	app := &HelloApp{
		prefs:   prefs,
		save:    config.ReadSave(prefs.SavePath),
		catalog: locale.NewCatalog(config.ExpandHome(prefs.LocalePath), config.AppName),
	}

	resolved := locale.Resolve(app.save.Locale, locale.SystemLocale(),
		prefs.DefaultLocale, app.catalog.HasLocale)
	app.catalog.Activate(resolved)
	app.locale = resolved

	// Persist the resolution so the next run starts from it
	if app.save.Locale != resolved {
		app.save.Locale = resolved
		if err := app.save.Write(prefs.SavePath); err != nil {
			system.Warn("Could not persist locale choice:", err)
		}
	}

	app.pages = content.NewStore(prefs.PagesPath(), prefs.DefaultLocale)
	app.autostart = autostart.NewManager(
		config.ExpandHome(prefs.DesktopPath),
		config.ExpandHome(prefs.AutostartPath),
		config.ExpandHome("~/.i3/config"),
		config.AppName,
	)

	return app, nil
}

// handleStatus processes the status command
func handleStatus() error {
	app, err := newHelloApp()
	if err != nil {
		return err
	}

	lsb := system.ReadLSBRelease("/etc/lsb-release")

	fmt.Println("\n=== WELCOME STATUS ===")
	fmt.Printf("Version: %s\n", Version)
	fmt.Printf("Distribution: %s %s\n", lsb.Codename, lsb.Release)
	fmt.Printf("Locale: %s (%s)\n", app.locale, locale.DisplayName(app.locale))
	fmt.Printf("Autostart: %s\n", boolToStatus(app.autostart.IsEnabled()))

	if system.IsLiveSession(config.ExpandHome(app.prefs.LivePath),
		config.ExpandHome(app.prefs.InstallerPath)) {
		fmt.Println("Session: Live media (installer available)")
	} else {
		fmt.Println("Session: Installed system")
	}

	fmt.Println("\nLanguages:")
	for _, id := range app.catalog.Available() {
		marker := " "
		if id == app.locale {
			marker = "*"
		}
		fmt.Printf("  %s %s - %s\n", marker, id, locale.DisplayName(id))
	}

	fmt.Println("\nLinks:")
	for _, name := range ui.LinkNames(app.prefs.URLs) {
		fmt.Printf("    %s\n", name)
	}

	return nil
}

// handleLocale shows or changes the display language
func handleLocale(args []string) error {
	app, err := newHelloApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Printf("Active locale: %s (%s)\n", app.locale, locale.DisplayName(app.locale))
		for _, id := range app.catalog.Available() {
			fmt.Printf("  %s - %s\n", id, locale.DisplayName(id))
		}
		return nil
	}

	// Persisted identifiers always use the hyphen form
	id := locale.Normalize(args[0])
	if !app.catalog.HasLocale(id) && id != app.prefs.DefaultLocale {
		return fmt.Errorf("no translation installed for %q", id)
	}

	app.save.Locale = id
	if err := app.save.Write(app.prefs.SavePath); err != nil {
		return err
	}
	app.catalog.Activate(id)

	system.Info("Locale changed to", id)
	fmt.Printf("✅ Language set to %s (%s)\n", id, locale.DisplayName(id))
	return nil
}

// handlePages processes the pages command
func handlePages() error {
	app, err := newHelloApp()
	if err != nil {
		return err
	}

	pages, err := app.pages.List()
	if err != nil {
		return err
	}

	for _, page := range pages {
		fmt.Println(page)
	}
	return nil
}

// handlePage processes the page command
func handlePage(name string) error {
	app, err := newHelloApp()
	if err != nil {
		return err
	}

	fmt.Println(app.pages.Load(app.locale, name))
	return nil
}

// handleOpen processes the open command
func handleOpen(name string) error {
	app, err := newHelloApp()
	if err != nil {
		return err
	}

	return ui.OpenLink(name, app.prefs.URLs)
}

// handleInstall processes the install command
func handleInstall() error {
	app, err := newHelloApp()
	if err != nil {
		return err
	}

	livePath := config.ExpandHome(app.prefs.LivePath)
	installerPath := config.ExpandHome(app.prefs.InstallerPath)

	if !system.IsLiveSession(livePath, installerPath) {
		return fmt.Errorf("the system installer is only available on live media")
	}

	if err := process.LaunchInstaller(installerPath); err != nil {
		return err
	}

	fmt.Println("✅ System installer launched")
	return nil
}

// handleAutostart flips the start-on-login registration
func handleAutostart(desired bool) error {
	app, err := newHelloApp()
	if err != nil {
		return err
	}

	setErr := app.autostart.Set(desired)

	// Always report the actual on-disk state, not the attempted one
	fmt.Printf("Autostart: %s\n", boolToStatus(app.autostart.IsEnabled()))

	if setErr != nil {
		system.Error("Autostart toggle failed:", setErr)
		return setErr
	}
	return nil
}

// boolToStatus converts boolean to status string
func boolToStatus(enabled bool) string {
	if enabled {
		return "✅ Enabled"
	}
	return "❌ Disabled"
}
