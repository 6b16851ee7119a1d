package builder

import "html/template"

type pageData struct {
	Theme string
}

var editorPage = template.Must(template.New("editor").Parse(`<!DOCTYPE html>
<html lang="en" data-signals="{theme: '{{.Theme}}'}" data-attr-data-theme="$theme">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QR Studio</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<style>
:root { color-scheme: light; --bg: #ffffff; --fg: #111111; --muted: #f2f2f2; }
[data-theme="dark"] { color-scheme: dark; --bg: #15161a; --fg: #eaeaea; --muted: #24262c; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--bg); color: var(--fg); }
main { display: flex; gap: 2rem; padding: 2rem; flex-wrap: wrap; }
fieldset { border: 1px solid var(--muted); border-radius: 8px; margin-bottom: 1rem; }
label { display: block; margin: 0.5rem 0 0.15rem; font-size: 0.85rem; }
input, select, textarea { width: 100%; box-sizing: border-box; padding: 0.4rem; background: var(--muted); color: var(--fg); border: none; border-radius: 4px; }
button { padding: 0.5rem 1rem; border: none; border-radius: 6px; cursor: pointer; }
#qr-frame { width: 288px; min-height: 288px; display: grid; place-items: center; background: var(--muted); border-radius: 12px; }
.toast { position: fixed; bottom: 1rem; right: 1rem; padding: 0.75rem 1.25rem; border-radius: 8px; background: var(--muted); }
.toast-error { background: #c0392b; color: #fff; }
.toast-success { background: #27ae60; color: #fff; }
</style>
</head>
<body data-signals="{type: 'text', content: '', subject: '', body: '', ssid: '', password: '', encryption: 'WPA', hidden: false, first_name: '', last_name: '', org: '', title: '', home_phone: '', mobile: '', work_phone: '', home_fax: '', work_fax: '', email: '', website: '', street: '', city: '', state: '', zip: '', country: '', note: '', fg: '#000000', bg: '#ffffff', level: 'M', margin: 16, width: 256}"
      data-on-load="@get('/stream')">
<main>
<section id="editor" style="flex: 1 1 320px; max-width: 480px;">
  <header style="display:flex; justify-content:space-between; align-items:center;">
    <h1>QR Studio</h1>
    <button data-on-click="@post('/theme')" title="Toggle theme">◐</button>
  </header>

  <label for="type">Payload type</label>
  <select id="type" data-bind-type data-on-change="@post('/edit')">
    <option value="text">Text</option>
    <option value="url">URL</option>
    <option value="contact">Contact</option>
    <option value="wifi">WiFi</option>
    <option value="email">Email</option>
    <option value="phone">Phone</option>
    <option value="sms">SMS</option>
  </select>

  <fieldset data-show="$type == 'text' || $type == 'url' || $type == 'phone'">
    <label for="content">Content</label>
    <input id="content" data-bind-content data-on-input="@post('/edit')">
  </fieldset>

  <fieldset data-show="$type == 'email' || $type == 'sms'">
    <label for="address">Address / number</label>
    <input id="address" data-bind-content data-on-input="@post('/edit')">
    <div data-show="$type == 'email'">
      <label for="subject">Subject</label>
      <input id="subject" data-bind-subject data-on-input="@post('/edit')">
    </div>
    <label for="body">Message</label>
    <textarea id="body" data-bind-body data-on-input="@post('/edit')"></textarea>
  </fieldset>

  <fieldset data-show="$type == 'wifi'">
    <label for="ssid">Network name</label>
    <input id="ssid" data-bind-ssid data-on-input="@post('/edit')">
    <label for="password">Password</label>
    <input id="password" type="password" data-bind-password data-on-input="@post('/edit')">
    <label for="encryption">Encryption</label>
    <select id="encryption" data-bind-encryption data-on-change="@post('/edit')">
      <option value="WPA">WPA/WPA2</option>
      <option value="WEP">WEP</option>
      <option value="nopass">None</option>
    </select>
    <label><input type="checkbox" data-bind-hidden data-on-change="@post('/edit')" style="width:auto"> Hidden network</label>
  </fieldset>

  <fieldset data-show="$type == 'contact'">
    <label for="first_name">First name</label>
    <input id="first_name" data-bind-first_name data-on-input="@post('/edit')">
    <label for="last_name">Last name</label>
    <input id="last_name" data-bind-last_name data-on-input="@post('/edit')">
    <label for="org">Organization</label>
    <input id="org" data-bind-org data-on-input="@post('/edit')">
    <label for="title">Job title</label>
    <input id="title" data-bind-title data-on-input="@post('/edit')">
    <label for="mobile">Mobile</label>
    <input id="mobile" data-bind-mobile data-on-input="@post('/edit')">
    <label for="home_phone">Home phone</label>
    <input id="home_phone" data-bind-home_phone data-on-input="@post('/edit')">
    <label for="work_phone">Work phone</label>
    <input id="work_phone" data-bind-work_phone data-on-input="@post('/edit')">
    <label for="home_fax">Home fax</label>
    <input id="home_fax" data-bind-home_fax data-on-input="@post('/edit')">
    <label for="work_fax">Work fax</label>
    <input id="work_fax" data-bind-work_fax data-on-input="@post('/edit')">
    <label for="email">Email</label>
    <input id="email" data-bind-email data-on-input="@post('/edit')">
    <label for="website">Website</label>
    <input id="website" data-bind-website data-on-input="@post('/edit')">
    <label for="street">Street</label>
    <input id="street" data-bind-street data-on-input="@post('/edit')">
    <label for="city">City</label>
    <input id="city" data-bind-city data-on-input="@post('/edit')">
    <label for="state">State</label>
    <input id="state" data-bind-state data-on-input="@post('/edit')">
    <label for="zip">ZIP</label>
    <input id="zip" data-bind-zip data-on-input="@post('/edit')">
    <label for="country">Country</label>
    <input id="country" data-bind-country data-on-input="@post('/edit')">
    <label for="note">Note</label>
    <textarea id="note" data-bind-note data-on-input="@post('/edit')"></textarea>
  </fieldset>

  <fieldset>
    <legend>Appearance</legend>
    <label for="fg">Foreground</label>
    <input id="fg" type="color" data-bind-fg data-on-change="@post('/edit')">
    <label for="bg">Background</label>
    <input id="bg" type="color" data-bind-bg data-on-change="@post('/edit')">
    <label for="level">Error correction</label>
    <select id="level" data-bind-level data-on-change="@post('/edit')">
      <option value="L">Low (7%)</option>
      <option value="M">Medium (15%)</option>
      <option value="Q">Quartile (25%)</option>
      <option value="H">High (30%)</option>
    </select>
    <label for="margin">Margin (px)</label>
    <input id="margin" type="number" min="0" data-bind-margin data-on-change="@post('/edit')">
    <label for="width">Width (px)</label>
    <input id="width" type="number" min="64" data-bind-width data-on-change="@post('/edit')">
  </fieldset>
</section>

<section id="preview" style="flex: 0 0 auto;">
  <div id="qr-frame"><span>Type something to generate a code</span></div>
  <div style="display:flex; gap:0.5rem; margin-top:1rem;">
    <a href="/download" download><button>Download</button></a>
    <button data-on-click="fetch('/share', {method: 'POST'}).then(r => r.status == 200 ? r.json() : null).then(d => d && (navigator.share ? navigator.share({title: d.title, url: d.dataUri}) : navigator.clipboard.writeText(d.dataUri)))">Share</button>
    <button data-on-click="fetch('/copy', {method: 'POST'}).then(r => r.status == 200 ? r.json() : null).then(d => d && navigator.clipboard.writeText(d.content))">Copy text</button>
  </div>
</section>
</main>
<div id="toast"></div>
</body>
</html>`))
